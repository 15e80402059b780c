package fixture

// romaniaRoads lists the undirected road segments of the Romania map.
var romaniaRoads = []struct {
	u, v string
	km   float64
}{
	{"Arad", "Zerind", 75}, {"Arad", "Sibiu", 140}, {"Arad", "Timisoara", 118},
	{"Bucharest", "Urziceni", 85}, {"Bucharest", "Pitesti", 101},
	{"Bucharest", "Giurgiu", 90}, {"Bucharest", "Fagaras", 211},
	{"Craiova", "Drobeta", 120}, {"Craiova", "Rimnicu", 146}, {"Craiova", "Pitesti", 138},
	{"Drobeta", "Mehadia", 75},
	{"Eforie", "Hirsova", 86},
	{"Fagaras", "Sibiu", 99},
	{"Hirsova", "Urziceni", 98},
	{"Iasi", "Vaslui", 92}, {"Iasi", "Neamt", 87},
	{"Lugoj", "Timisoara", 111}, {"Lugoj", "Mehadia", 70},
	{"Oradea", "Zerind", 71}, {"Oradea", "Sibiu", 151},
	{"Pitesti", "Rimnicu", 97},
	{"Rimnicu", "Sibiu", 80},
	{"Urziceni", "Vaslui", 142},
}

// straightLineToBucharest is the admissible, consistent SLD heuristic.
var straightLineToBucharest = map[string]float64{
	"Arad": 366, "Bucharest": 0, "Craiova": 160, "Drobeta": 242, "Eforie": 161,
	"Fagaras": 176, "Giurgiu": 77, "Hirsova": 151, "Iasi": 226, "Lugoj": 244,
	"Mehadia": 241, "Neamt": 234, "Oradea": 380, "Pitesti": 100, "Rimnicu": 193,
	"Sibiu": 253, "Timisoara": 329, "Urziceni": 80, "Vaslui": 199, "Zerind": 374,
}

// Romania returns the road map as an uninformed problem from start to goal.
func Romania(start, goal string) *Graph {
	g := NewGraph(start, goal)
	g.Name = "Romania " + start + "→" + goal
	for _, r := range romaniaRoads {
		g.AddEdge(r.u, r.v, r.km)
	}
	return g
}

// RomaniaSLD returns Arad→Bucharest with the straight-line-distance heuristic.
func RomaniaSLD() *Informed {
	return &Informed{Graph: Romania("Arad", "Bucharest"), Estimate: straightLineToBucharest}
}
