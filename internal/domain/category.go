package domain

// The category set is closed: each name below is backed by a structurally
// identical table, and no category can be added or removed at runtime.
// Every category name arriving from a request must pass ValidCategory
// before it is ever used to address a table.
var categories = []string{
	"assets",
	"employees",
	"maintenance_logs",
	"documents",
	"depreciation_history",
	"it_hardware",
	"software_license",
	"locations",
	"machinery_equipment",
	"digital_media",
	"vehicles",
	"real_estate",
	"furniture",
	"financial_assets",
	"infrastructure",
	"tools",
	"leased_assets",
	"intellectual_property",
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}()

// Categories returns the registry in its fixed order. The returned slice
// must not be mutated by callers.
func Categories() []string {
	return categories
}

func ValidCategory(name string) bool {
	_, ok := categorySet[name]
	return ok
}
