package ingest

// DefaultWarehouseAliases collapses the spelling variants of physical
// warehouses that accumulated in the sheet over the years into one
// canonical name each. Keys are matched after trimming and upper-casing.
// The table is configuration handed to the adapter, not a mutable global;
// callers may pass their own.
var DefaultWarehouseAliases = map[string]string{
	"RIYADH W.H.":        "RIYADH WH",
	"RIYADH WAREHOUSE":   "RIYADH WH",
	"RIYADH WH 1":        "RIYADH WH",
	"JEDDAH W.H.":        "JEDDAH WH",
	"JEDDAH WAREHOUSE":   "JEDDAH WH",
	"DAMMAM W.H.":        "DAMMAM WH",
	"DAMMAM WAREHOUSE":   "DAMMAM WH",
	"KHAMIS W.H.":        "KHAMIS WH",
	"KHAMIS WAREHOUSE":   "KHAMIS WH",
	"KHAMIS MUSHAIT WH":  "KHAMIS WH",
}

// CanonicalName resolves a location name through the alias table, falling
// back to the trimmed original.
func CanonicalName(name string, aliases map[string]string) string {
	trimmed := trimUpper(name)
	if canonical, ok := aliases[trimmed]; ok {
		return canonical
	}
	return trimSpaceOnly(name)
}
