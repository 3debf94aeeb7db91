package testgrids

// All contains all rendering scenarios, grouped by category.
// The category name is used as a prefix in exported image titles.
var All = map[string][]Case{
	"map":   mapCases,
	"field": fieldCases,
	"path":  pathCases,
}
