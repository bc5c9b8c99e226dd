package timezone

// aliases maps lower-cased abbreviations and friendly names to canonical
// identifiers. Every value must itself be loadable by time.LoadLocation.
var aliases = map[string]string{
	// Universal
	"utc":       "UTC",
	"gmt":       "UTC",
	"z":         "UTC",
	"zulu":      "UTC",
	"universal": "UTC",

	// North America
	"pst":         "America/Los_Angeles",
	"pdt":         "America/Los_Angeles",
	"pt":          "America/Los_Angeles",
	"pacific":     "America/Los_Angeles",
	"los angeles": "America/Los_Angeles",
	"la":          "America/Los_Angeles",
	"seattle":     "America/Los_Angeles",
	"vancouver":   "America/Vancouver",
	"mst":         "America/Denver",
	"mdt":         "America/Denver",
	"mt":          "America/Denver",
	"mountain":    "America/Denver",
	"denver":      "America/Denver",
	"arizona":     "America/Phoenix",
	"phoenix":     "America/Phoenix",
	"cst":         "America/Chicago",
	"cdt":         "America/Chicago",
	"ct":          "America/Chicago",
	"central":     "America/Chicago",
	"chicago":     "America/Chicago",
	"est":         "America/New_York",
	"edt":         "America/New_York",
	"et":          "America/New_York",
	"eastern":     "America/New_York",
	"new york":    "America/New_York",
	"nyc":         "America/New_York",
	"toronto":     "America/Toronto",
	"akst":        "America/Anchorage",
	"akdt":        "America/Anchorage",
	"alaska":      "America/Anchorage",
	"hst":         "Pacific/Honolulu",
	"hawaii":      "Pacific/Honolulu",
	"mexico city": "America/Mexico_City",
	"sao paulo":   "America/Sao_Paulo",
	"brt":         "America/Sao_Paulo",

	// Europe
	"london":    "Europe/London",
	"bst":       "Europe/London",
	"uk":        "Europe/London",
	"dublin":    "Europe/Dublin",
	"lisbon":    "Europe/Lisbon",
	"wet":       "Europe/Lisbon",
	"cet":       "Europe/Paris",
	"cest":      "Europe/Paris",
	"paris":     "Europe/Paris",
	"berlin":    "Europe/Berlin",
	"amsterdam": "Europe/Amsterdam",
	"madrid":    "Europe/Madrid",
	"rome":      "Europe/Rome",
	"zurich":    "Europe/Zurich",
	"stockholm": "Europe/Stockholm",
	"eet":       "Europe/Athens",
	"eest":      "Europe/Athens",
	"athens":    "Europe/Athens",
	"helsinki":  "Europe/Helsinki",
	"kyiv":      "Europe/Kyiv",
	"istanbul":  "Europe/Istanbul",
	"msk":       "Europe/Moscow",
	"moscow":    "Europe/Moscow",

	// Africa and Middle East
	"cairo":        "Africa/Cairo",
	"johannesburg": "Africa/Johannesburg",
	"sast":         "Africa/Johannesburg",
	"lagos":        "Africa/Lagos",
	"nairobi":      "Africa/Nairobi",
	"dubai":        "Asia/Dubai",
	"gst":          "Asia/Dubai",
	"tehran":       "Asia/Tehran",

	// Asia
	"ist":       "Asia/Kolkata",
	"india":     "Asia/Kolkata",
	"kolkata":   "Asia/Kolkata",
	"mumbai":    "Asia/Kolkata",
	"karachi":   "Asia/Karachi",
	"dhaka":     "Asia/Dhaka",
	"bangkok":   "Asia/Bangkok",
	"ict":       "Asia/Bangkok",
	"jakarta":   "Asia/Jakarta",
	"wib":       "Asia/Jakarta",
	"singapore": "Asia/Singapore",
	"sgt":       "Asia/Singapore",
	"hong kong": "Asia/Hong_Kong",
	"hkt":       "Asia/Hong_Kong",
	"china":     "Asia/Shanghai",
	"beijing":   "Asia/Shanghai",
	"shanghai":  "Asia/Shanghai",
	"taipei":    "Asia/Taipei",
	"manila":    "Asia/Manila",
	"seoul":     "Asia/Seoul",
	"kst":       "Asia/Seoul",
	"tokyo":     "Asia/Tokyo",
	"jst":       "Asia/Tokyo",
	"japan":     "Asia/Tokyo",

	// Oceania
	"perth":     "Australia/Perth",
	"awst":      "Australia/Perth",
	"adelaide":  "Australia/Adelaide",
	"brisbane":  "Australia/Brisbane",
	"sydney":    "Australia/Sydney",
	"melbourne": "Australia/Melbourne",
	"aest":      "Australia/Sydney",
	"aedt":      "Australia/Sydney",
	"auckland":  "Pacific/Auckland",
	"nzst":      "Pacific/Auckland",
	"nzdt":      "Pacific/Auckland",
}
