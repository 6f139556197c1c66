package domain

// Lexical tables shared by the NOTAM and TAF decoders. They are built once at
// package init and only ever read, so concurrent decoders share them freely.

// qCodeCategories maps five-letter NOTAM Q-codes to a category description.
var qCodeCategories = map[string]string{
	// Aerodrome
	"QFALC": "aerodrome closed",
	"QFALT": "alternate aerodrome available",
	"QFAXX": "aerodrome: other",

	// Runway
	"QMRLC": "runway closed",
	"QMRLT": "runway partially closed",
	"QMRXX": "runway: other",
	"QMRAS": "runway: length reduced",
	"QMRCC": "runway: surface condition changed",

	// Taxiway
	"QMXLC": "taxiway closed",
	"QMXLT": "taxiway partially closed",
	"QMXXX": "taxiway: other",

	// Apron and parking
	"QMALC": "apron closed",
	"QMALT": "apron partially closed",
	"QMAXX": "apron: other",

	// Aerodrome lighting
	"QMGXX": "aerodrome lighting: other",
	"QMGLU": "runway lights unserviceable",
	"QMGLT": "taxiway lights unserviceable",
	"QMGLA": "apron lights unserviceable",

	// Navaids
	"QNIAS": "ILS unserviceable",
	"QNIAT": "ILS limited operation",
	"QNIXX": "ILS: other",
	"QNVXX": "VOR: other",
	"QNVAU": "VOR unserviceable",
	"QNDXX": "DME: other",
	"QNDAU": "DME unserviceable",
	"QNNXX": "NDB: other",
	"QNNAU": "NDB unserviceable",

	// Airspace
	"QRRCA": "airspace restriction active",
	"QRRCT": "temporary airspace restriction",
	"QRPCA": "prohibited area active",
	"QRDCA": "danger area active",
	"QRTCA": "temporary area active",
	"QRAXX": "airspace: other",

	// Obstacles
	"QOBXX": "obstacle: other",
	"QOBCE": "obstacle erected",
	"QOBCL": "obstacle lit",

	// Procedures
	"QFPXX": "flight procedures: other",

	// Meteorology
	"QWFXX": "weather forecast: other",
	"QWEAU": "weather station unserviceable",

	// Services
	"QSAXX": "air navigation services: other",
	"QSXXX": "services: other",
	"QSFAU": "fuel unavailable",
	"QSUAS": "search and rescue: other",
	"QSGAS": "ground handling limited",

	"QXXXX": "other",
}

// criticalQCodes are matched exactly: closures of the aerodrome, runway or
// taxiway, and an unserviceable ILS.
var criticalQCodes = map[string]bool{
	"QFALC": true,
	"QMRLC": true,
	"QMXLC": true,
	"QNIAS": true,
}

// warningQCodes are matched on their first four characters so that variants
// of the same code family classify the same way.
var warningQCodes = []string{
	"QMRLT", // runway partially closed
	"QMALC", // apron closed
	"QMGLU", // runway lights
	"QRRCA", // airspace restriction
	"QOBXX", // obstacles
}

// abbreviation is one dictionary entry. The dictionary is a slice because
// definition order breaks ties between keys matching at the same position.
type abbreviation struct {
	Token     string
	Expansion string
}

var abbreviations = []abbreviation{
	// Aerodrome facilities
	{"RWY", "runway"},
	{"TWY", "taxiway"},
	{"APRON", "apron"},
	{"TERMINAL", "terminal"},
	{"PARKING", "parking"},

	// States
	{"CLSD", "closed"},
	{"CLOSED", "closed"},
	{"OPEN", "open"},
	{"AVBL", "available"},
	{"AVAILABLE", "available"},
	{"U/S", "unserviceable"},
	{"UNSERVICEABLE", "unserviceable"},
	{"OPS", "operations"},
	{"OPR", "operating"},
	{"OPERATIONAL", "operational"},

	// Reasons
	{"MAINT", "maintenance"},
	{"MAINTENANCE", "maintenance"},
	{"WIP", "work in progress"},
	{"WORK IN PROGRESS", "work in progress"},
	{"CONST", "construction"},
	{"CONSTRUCTION", "construction"},
	{"REPAIR", "repair"},
	{"INSP", "inspection"},
	{"INSPECTION", "inspection"},

	// Navigation
	{"ILS", "instrument landing system"},
	{"VOR", "VHF omnidirectional range"},
	{"DME", "distance measuring equipment"},
	{"NDB", "non-directional beacon"},
	{"PAPI", "precision approach path indicator"},
	{"VASIS", "visual approach slope indicator system"},

	// Lighting
	{"LGT", "lights"},
	{"LIGHTS", "lights"},
	{"ALS", "approach lighting system"},
	{"EDGE", "edge lights"},
	{"CL", "centerline lights"},
	{"CENTERLINE", "centerline lights"},

	// Heights
	{"SFC", "surface"},
	{"GND", "ground"},
	{"AGL", "above ground level"},
	{"AMSL", "above mean sea level"},
	{"FT", "feet"},
	{"FL", "flight level"},

	// Time
	{"DAILY", "daily"},
	{"MON", "Monday"},
	{"TUE", "Tuesday"},
	{"WED", "Wednesday"},
	{"THU", "Thursday"},
	{"FRI", "Friday"},
	{"SAT", "Saturday"},
	{"SUN", "Sunday"},
	{"UTC", "UTC"},
	{"PERM", "permanent"},
	{"TEMPO", "temporary"},

	// Other
	{"INFO", "information"},
	{"ADZ", "aerodrome zone"},
	{"CTR", "control zone"},
	{"FIR", "flight information region"},
	{"TMA", "terminal control area"},
	{"FREQ", "frequency"},
	{"ATIS", "automatic terminal information service"},
}

// cloudCover describes TAF cloud amount codes.
var cloudCover = map[string]string{
	"SKC": "sky clear",
	"CLR": "clear",
	"NSC": "no significant cloud",
	"NCD": "no cloud detected",
	"FEW": "few (1-2 oktas)",
	"SCT": "scattered (3-4 oktas)",
	"BKN": "broken (5-7 oktas)",
	"OVC": "overcast (8 oktas)",
	"VV":  "vertical visibility",
}

// cloudTypes describes cloud genus codes.
var cloudTypes = map[string]string{
	"CB":  "cumulonimbus",
	"TCU": "towering cumulus",
	"CI":  "cirrus",
	"CC":  "cirrocumulus",
	"CS":  "cirrostratus",
	"AC":  "altocumulus",
	"AS":  "altostratus",
	"NS":  "nimbostratus",
	"SC":  "stratocumulus",
	"ST":  "stratus",
	"CU":  "cumulus",
}

// intensityMarkers are the leading qualifiers stripped before a weather code
// is decoded two characters at a time.
var intensityMarkers = map[string]string{
	"-":  "light",
	"+":  "heavy",
	"VC": "in the vicinity",
}

// weatherPhenomena maps two-letter descriptor and phenomenon codes.
var weatherPhenomena = map[string]string{
	// Descriptors
	"MI": "shallow",
	"BC": "patches",
	"PR": "partial",
	"DR": "low drifting",
	"BL": "blowing",
	"SH": "showers",
	"TS": "thunderstorm",
	"FZ": "freezing",

	// Precipitation
	"DZ": "drizzle",
	"RA": "rain",
	"SN": "snow",
	"SG": "snow grains",
	"IC": "ice crystals",
	"PL": "ice pellets",
	"GR": "hail",
	"GS": "small hail",
	"UP": "unknown precipitation",

	// Obscuration
	"BR": "mist",
	"FG": "fog",
	"FU": "smoke",
	"VA": "volcanic ash",
	"DU": "dust",
	"SA": "sand",
	"HZ": "haze",
	"PY": "spray",

	// Other
	"PO": "dust whirls",
	"SQ": "squalls",
	"FC": "funnel cloud",
	"SS": "sandstorm",
	"DS": "duststorm",
}

// nonWeatherCodes are alphabetic TAF tokens that must not be read as weather.
var nonWeatherCodes = map[string]bool{
	"CAVOK": true,
	"NSC":   true,
	"SKC":   true,
	"CLR":   true,
	"NCD":   true,
}

// compassPoints are the eight 45-degree sectors starting at north.
var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// notamKindText describes the NOTAM series letter.
var notamKindText = map[NotamKind]string{
	NotamNew:     "new",
	NotamReplace: "replacement",
	NotamCancel:  "cancellation",
}
