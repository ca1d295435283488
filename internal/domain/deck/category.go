package deck

// Category is the canonical name of a slot category. It matches the Name of
// a domain.MatrixRow.
type Category string

// Known slot categories.
const (
	CategoryHelis     Category = "EDefaultFactories/Helis"
	CategoryLogistic  Category = "EDefaultFactories/Logistic"
	CategoryAir       Category = "EDefaultFactories/air"
	CategorySupport   Category = "EDefaultFactories/support"
	CategoryAT        Category = "EDefaultFactories/at"
	CategoryInfantry  Category = "EDefaultFactories/infanterie"
	CategoryRecon     Category = "EDefaultFactories/reco"
	CategoryTank      Category = "EDefaultFactories/tank"
	CategoryUndefined Category = "NOT_DEFINED" // catch-all for unknown factories
)

// factoryCategories maps raw unit factory descriptors to slot categories.
var factoryCategories = map[string]Category{
	"EDefaultFactories/Helis":    CategoryHelis,
	"EDefaultFactories/Logistic": CategoryLogistic,
	"EDefaultFactories/Planes":   CategoryAir,
	"EDefaultFactories/Support":  CategorySupport,
	"EDefaultFactories/AT":       CategoryAT,
	"EDefaultFactories/Infantry": CategoryInfantry,
	"EDefaultFactories/Recons":   CategoryRecon,
	"EDefaultFactories/Tanks":    CategoryTank,
}

// Classify maps a unit's raw factory descriptor to its slot category.
// Unknown or empty descriptors classify as CategoryUndefined.
func Classify(factoryDescriptor string) Category {
	if c, ok := factoryCategories[factoryDescriptor]; ok {
		return c
	}
	return CategoryUndefined
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
