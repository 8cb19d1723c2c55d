package axes

// TrueString is the only string value that enables a track when flags arrive
// in their serialized "True"/"False" form.
const TrueString = "True"

// ParseFlag reports whether s enables a track. Only the exact string "True"
// does; "true", "1", "" and everything else are false.
func ParseFlag(s string) bool {
	return s == TrueString
}

// Flags describes which auxiliary tracks are drawn below the per-sample grids.
type Flags struct {
	GeneFeature bool
	Amplicon    bool
}

// ParseFlags builds Flags from the serialized string convention.
func ParseFlags(geneFeature, amplicon string) Flags {
	return Flags{
		GeneFeature: ParseFlag(geneFeature),
		Amplicon:    ParseFlag(amplicon),
	}
}

// Extra reports whether an extra grid is reserved after the sample grids. Gene
// features and amplicons share that one slot.
func (f Flags) Extra() bool {
	return f.GeneFeature || f.Amplicon
}
