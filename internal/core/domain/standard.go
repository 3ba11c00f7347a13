package domain

// gccCStandards maps GCC's C standard names to the names the editor understands.
var gccCStandards = map[string]string{
	"gnu99": "c99",
}

// NormalizeCStandard translates a GCC C standard name. Names missing from the
// table are returned unchanged.
func NormalizeCStandard(name string) string {
	if mapped, ok := gccCStandards[name]; ok {
		return mapped
	}
	return name
}
