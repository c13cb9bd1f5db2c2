package simxml

// Attr is one XML attribute. Attribute tables are ordered slices so output
// order is stable.
type Attr struct {
	Key   string
	Value string
}

// DefaultMooring is the material block of every component.
var DefaultMooring = []Attr{
	{"addedmasscoefflocaly", "0.0"},
	{"addedmasscoefflocalz", "0.0"},
	{"areal", "0.0"},
	{"massdensity", "0.0"},
	{"noCompressionForces", "false"},
	{"pretension", "0.0"},
	{"weightInAir", "0.0"},
	{"young", "0.0"},
}

// DefaultExtra is the extra attribute block of every component.
var DefaultExtra = []Attr{
	{"breakingload", "0.0"},
	{"materialcoefficient", "0.0"},
	{"trusstype", "3"},
	{"weighttoaimfor", "0.0"},
}

// DefaultLoadModel is the hydrodynamic load block of every component.
var DefaultLoadModel = []Attr{
	{"LoadType", "MORRISON"},
	{"closeSurfaceNumPoints", "0"},
	{"constructionDamping", "0.0"},
	{"currentreduction", "0.0"},
	{"dragArealy", "0.0"},
	{"dragArealyz", "0.0"},
	{"dragCoeffy", "1.2"},
	{"dragCoeffz", "1.2"},
	{"hullnumPoints", "0"},
	{"massRadius", "0.0"},
	{"numWaveHeading", "0"},
	{"numvelocities", "0"},
	{"rayleighStiffness", "0.0"},
	{"tangentialDragCoefficient", "0.0"},
	{"viscousRollDamping", "1.0"},
	{"wavereduction", "0.0"},
}

// DefaultDescription is the descriptive metadata block of every component.
var DefaultDescription = []Attr{
	{"active", "true"},
	{"des", ""},
}
