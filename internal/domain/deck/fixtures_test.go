package deck

import "github.com/phrazzld/armoury-api/internal/domain"

func testUnits() domain.UnitMap {
	return domain.NewUnitMap([]domain.Unit{
		{Descriptor: "Unit_M1A1", Name: "M1A1 Abrams", FactoryDescriptor: "EDefaultFactories/Tanks"},
		{Descriptor: "Unit_M60A3", Name: "M60A3", FactoryDescriptor: "EDefaultFactories/Tanks"},
		{Descriptor: "Unit_Rifles", Name: "Rifles", FactoryDescriptor: "EDefaultFactories/Infantry"},
		{Descriptor: "Unit_M113", Name: "M113", FactoryDescriptor: "EDefaultFactories/Logistic"},
		{Descriptor: "Unit_Prototype", Name: "Prototype", FactoryDescriptor: "EDefaultFactories/Prototypes"},
		{Descriptor: "Unit_AH1", Name: "AH-1 Cobra", FactoryDescriptor: "EDefaultFactories/Helis"},
	})
}

func testDivision() *domain.Division {
	return &domain.Division{
		Descriptor: "Descriptor_Deck_Division_US_3rd_Arm",
		CostMatrix: domain.CostMatrix{
			Name: "MatrixCostName_US_3rd_Arm",
			Matrix: []domain.MatrixRow{
				{Name: string(CategoryTank), ActivationCosts: []int{10, 20, 40}},
				{Name: string(CategoryInfantry), ActivationCosts: []int{0, 5}},
				{Name: string(CategoryLogistic), ActivationCosts: []int{0}},
			},
		},
		Packs: []domain.Pack{
			testPack("Pack_M1A1", "Descriptor/Unit_M1A1", 2, 1),
			testPack("Pack_Rifles", "Unit_Rifles", 6, 3),
			testPack("Pack_M60A3", "Unit_M60A3", 4, 2),
			testPack("Pack_Ghost", "Unit_Missing", 1, 1),
			testPack("Pack_Prototype", "Unit_Prototype", 1, 1),
			testPack("Pack_AH1", "Unit_AH1", 2, 1),
		},
	}
}

func testPack(descriptor, unit string, quantity float64, cards int) domain.Pack {
	return domain.Pack{
		PackDescriptor:                 descriptor,
		UnitDescriptor:                 unit,
		NumberOfUnitsInPack:            quantity,
		NumberOfUnitInPackXPMultiplier: []float64{1, 1, 0.75, 0.5},
		NumberOfCards:                  cards,
	}
}

func intentFor(division *domain.Division, units domain.UnitMap, packDescriptor string, veterancy int) PurchaseIntent {
	pack, _ := division.Pack(packDescriptor)
	unit, _ := units.Resolve(pack.UnitDescriptor)
	return PurchaseIntent{Unit: unit, Veterancy: veterancy, Pack: pack}
}
