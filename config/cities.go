package config

// CityGraph returns the built-in reference document: ten Indonesian airports
// with route distances, queried from Makassar to Batam on startup.
func CityGraph() *Document {
	doc := &Document{
		Graph: GraphConf{
			Labels: []string{"MKS", "SUB", "BDG", "CGK", "MLG", "DHS", "DPS", "YOG", "PDG", "BTM"},
			Names: []string{
				"Makassar", "Surabaya", "Bandung", "Jakarta (Cengkareng)", "Malang",
				"Daha", "Denpasar", "Yogyakarta", "Padang", "Batam",
			},
			Matrix: [][]int64{
				// MKS SUB BDG CGK MLG DHS DPS YOG PDG BTM
				{0, 2, 3, 0, 0, 0, 3, 0, 0, 0},  // MKS
				{2, 0, 0, 3, 0, 0, 1, 0, 0, 0},  // SUB
				{3, 0, 0, 4, 2, 0, 0, 0, 0, 0},  // BDG
				{0, 3, 4, 0, 0, 0, 0, 0, 0, 0},  // CGK
				{0, 0, 2, 0, 0, 3, 0, 0, 4, 0},  // MLG
				{0, 0, 0, 0, 3, 0, 2, 0, 0, 3},  // DHS
				{3, 1, 0, 0, 0, 2, 0, 3, 0, 10}, // DPS
				{0, 0, 0, 0, 0, 0, 3, 0, 0, 4},  // YOG
				{0, 0, 0, 0, 4, 0, 0, 0, 0, 2},  // PDG
				{0, 0, 0, 0, 0, 3, 10, 4, 2, 0}, // BTM
			},
		},
		Query: QueryConf{Start: "MKS", End: "BTM"},
	}
	ApplyDefaults(doc)

	return doc
}
