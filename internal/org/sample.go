package org

// Sample returns a small demo organisation, used by `orgchart render --sample`
// and `orgchart init`.
func Sample() *Manager {
	return NewManager("Joko Jokic",
		NewIndividualContributor("Faisal Fabbiani"),
		NewManager("Girish Gadjinsky",
			NewIndividualContributor("Arjun Acemoglu"),
			NewManager("Betty Bian",
				NewIndividualContributor("Konrad Kraikupt"),
				NewManager("Lars Littlebear",
					NewIndividualContributor("Mandy Maalouf"),
				),
			),
			NewManager("Niara Naber",
				NewIndividualContributor("Olga Omarosa"),
				NewIndividualContributor("Petter Palanisamy"),
				NewIndividualContributor("Qian Quasimodo"),
			),
		),
		NewManager("Harald Heß",
			NewIndividualContributor("Ciara Chukwu"),
			NewIndividualContributor("Dian Dagar"),
			NewIndividualContributor("Emmet Ergasi"),
		),
	)
}
