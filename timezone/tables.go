package timezone

// zoneEntry maps a lowercase place name to an IANA zone.
type zoneEntry struct {
	key  string
	zone string
}

// locationZones is scanned in order; the first match wins. Cities come
// before countries and abbreviations come last, so "Alexandria, Egypt"
// hits the city before anything shorter can match.
var locationZones = []zoneEntry{
	// Egypt
	{"cairo", "Africa/Cairo"},
	{"giza", "Africa/Cairo"},
	{"alexandria", "Africa/Cairo"},
	{"mansoura", "Africa/Cairo"},
	{"tanta", "Africa/Cairo"},
	{"zagazig", "Africa/Cairo"},
	{"ismailia", "Africa/Cairo"},
	{"port said", "Africa/Cairo"},
	{"suez", "Africa/Cairo"},
	{"luxor", "Africa/Cairo"},
	{"aswan", "Africa/Cairo"},
	{"hurghada", "Africa/Cairo"},
	{"sharm el sheikh", "Africa/Cairo"},
	{"asyut", "Africa/Cairo"},
	{"damanhur", "Africa/Cairo"},
	{"egypt", "Africa/Cairo"},

	// Gulf
	{"riyadh", "Asia/Riyadh"},
	{"jeddah", "Asia/Riyadh"},
	{"mecca", "Asia/Riyadh"},
	{"makkah", "Asia/Riyadh"},
	{"medina", "Asia/Riyadh"},
	{"dammam", "Asia/Riyadh"},
	{"khobar", "Asia/Riyadh"},
	{"saudi arabia", "Asia/Riyadh"},
	{"dubai", "Asia/Dubai"},
	{"abu dhabi", "Asia/Dubai"},
	{"sharjah", "Asia/Dubai"},
	{"ajman", "Asia/Dubai"},
	{"united arab emirates", "Asia/Dubai"},
	{"emirates", "Asia/Dubai"},
	{"doha", "Asia/Qatar"},
	{"qatar", "Asia/Qatar"},
	{"kuwait", "Asia/Kuwait"},
	{"manama", "Asia/Bahrain"},
	{"bahrain", "Asia/Bahrain"},
	{"muscat", "Asia/Muscat"},
	{"oman", "Asia/Muscat"},

	// Levant, Iraq, Yemen
	{"amman", "Asia/Amman"},
	{"jordan", "Asia/Amman"},
	{"beirut", "Asia/Beirut"},
	{"lebanon", "Asia/Beirut"},
	{"damascus", "Asia/Damascus"},
	{"aleppo", "Asia/Damascus"},
	{"syria", "Asia/Damascus"},
	{"baghdad", "Asia/Baghdad"},
	{"basra", "Asia/Baghdad"},
	{"erbil", "Asia/Baghdad"},
	{"iraq", "Asia/Baghdad"},
	{"gaza", "Asia/Gaza"},
	{"ramallah", "Asia/Hebron"},
	{"palestine", "Asia/Gaza"},
	{"jerusalem", "Asia/Jerusalem"},
	{"sanaa", "Asia/Aden"},
	{"aden", "Asia/Aden"},
	{"yemen", "Asia/Aden"},

	// North and sub-Saharan Africa
	{"khartoum", "Africa/Khartoum"},
	{"sudan", "Africa/Khartoum"},
	{"tripoli", "Africa/Tripoli"},
	{"benghazi", "Africa/Tripoli"},
	{"libya", "Africa/Tripoli"},
	{"tunis", "Africa/Tunis"},
	{"tunisia", "Africa/Tunis"},
	{"algiers", "Africa/Algiers"},
	{"algeria", "Africa/Algiers"},
	{"casablanca", "Africa/Casablanca"},
	{"rabat", "Africa/Casablanca"},
	{"marrakech", "Africa/Casablanca"},
	{"morocco", "Africa/Casablanca"},
	{"lagos", "Africa/Lagos"},
	{"abuja", "Africa/Lagos"},
	{"nigeria", "Africa/Lagos"},
	{"nairobi", "Africa/Nairobi"},
	{"kenya", "Africa/Nairobi"},
	{"addis ababa", "Africa/Addis_Ababa"},
	{"ethiopia", "Africa/Addis_Ababa"},
	{"johannesburg", "Africa/Johannesburg"},
	{"cape town", "Africa/Johannesburg"},
	{"south africa", "Africa/Johannesburg"},
	{"accra", "Africa/Accra"},
	{"ghana", "Africa/Accra"},

	// Europe
	{"istanbul", "Europe/Istanbul"},
	{"ankara", "Europe/Istanbul"},
	{"turkey", "Europe/Istanbul"},
	{"london", "Europe/London"},
	{"manchester", "Europe/London"},
	{"united kingdom", "Europe/London"},
	{"england", "Europe/London"},
	{"dublin", "Europe/Dublin"},
	{"ireland", "Europe/Dublin"},
	{"paris", "Europe/Paris"},
	{"france", "Europe/Paris"},
	{"berlin", "Europe/Berlin"},
	{"munich", "Europe/Berlin"},
	{"germany", "Europe/Berlin"},
	{"madrid", "Europe/Madrid"},
	{"barcelona", "Europe/Madrid"},
	{"spain", "Europe/Madrid"},
	{"rome", "Europe/Rome"},
	{"milan", "Europe/Rome"},
	{"italy", "Europe/Rome"},
	{"amsterdam", "Europe/Amsterdam"},
	{"netherlands", "Europe/Amsterdam"},
	{"brussels", "Europe/Brussels"},
	{"belgium", "Europe/Brussels"},
	{"vienna", "Europe/Vienna"},
	{"austria", "Europe/Vienna"},
	{"zurich", "Europe/Zurich"},
	{"geneva", "Europe/Zurich"},
	{"switzerland", "Europe/Zurich"},
	{"stockholm", "Europe/Stockholm"},
	{"sweden", "Europe/Stockholm"},
	{"athens", "Europe/Athens"},
	{"greece", "Europe/Athens"},
	{"moscow", "Europe/Moscow"},
	{"russia", "Europe/Moscow"},

	// Asia
	{"tehran", "Asia/Tehran"},
	{"iran", "Asia/Tehran"},
	{"karachi", "Asia/Karachi"},
	{"lahore", "Asia/Karachi"},
	{"islamabad", "Asia/Karachi"},
	{"pakistan", "Asia/Karachi"},
	{"mumbai", "Asia/Kolkata"},
	{"delhi", "Asia/Kolkata"},
	{"bangalore", "Asia/Kolkata"},
	{"india", "Asia/Kolkata"},
	{"dhaka", "Asia/Dhaka"},
	{"bangladesh", "Asia/Dhaka"},
	{"kuala lumpur", "Asia/Kuala_Lumpur"},
	{"malaysia", "Asia/Kuala_Lumpur"},
	{"singapore", "Asia/Singapore"},
	{"jakarta", "Asia/Jakarta"},
	{"indonesia", "Asia/Jakarta"},
	{"manila", "Asia/Manila"},
	{"philippines", "Asia/Manila"},
	{"beijing", "Asia/Shanghai"},
	{"shanghai", "Asia/Shanghai"},
	{"china", "Asia/Shanghai"},
	{"tokyo", "Asia/Tokyo"},
	{"japan", "Asia/Tokyo"},
	{"seoul", "Asia/Seoul"},
	{"korea", "Asia/Seoul"},

	// Americas and Oceania
	{"new york", "America/New_York"},
	{"boston", "America/New_York"},
	{"miami", "America/New_York"},
	{"chicago", "America/Chicago"},
	{"houston", "America/Chicago"},
	{"dallas", "America/Chicago"},
	{"denver", "America/Denver"},
	{"los angeles", "America/Los_Angeles"},
	{"san francisco", "America/Los_Angeles"},
	{"seattle", "America/Los_Angeles"},
	{"united states", "America/New_York"},
	{"toronto", "America/Toronto"},
	{"montreal", "America/Toronto"},
	{"vancouver", "America/Vancouver"},
	{"canada", "America/Toronto"},
	{"mexico", "America/Mexico_City"},
	{"sao paulo", "America/Sao_Paulo"},
	{"brazil", "America/Sao_Paulo"},
	{"buenos aires", "America/Argentina/Buenos_Aires"},
	{"argentina", "America/Argentina/Buenos_Aires"},
	{"sydney", "Australia/Sydney"},
	{"melbourne", "Australia/Melbourne"},
	{"australia", "Australia/Sydney"},

	// Abbreviations
	{"ksa", "Asia/Riyadh"},
	{"uae", "Asia/Dubai"},
	{"usa", "America/New_York"},
}

// nationalityZones maps adjectival nationality forms to zones.
var nationalityZones = []zoneEntry{
	{"egyptian", "Africa/Cairo"},
	{"saudi", "Asia/Riyadh"},
	{"emirati", "Asia/Dubai"},
	{"qatari", "Asia/Qatar"},
	{"kuwaiti", "Asia/Kuwait"},
	{"bahraini", "Asia/Bahrain"},
	{"omani", "Asia/Muscat"},
	{"jordanian", "Asia/Amman"},
	{"lebanese", "Asia/Beirut"},
	{"syrian", "Asia/Damascus"},
	{"iraqi", "Asia/Baghdad"},
	{"palestinian", "Asia/Gaza"},
	{"yemeni", "Asia/Aden"},
	{"sudanese", "Africa/Khartoum"},
	{"libyan", "Africa/Tripoli"},
	{"tunisian", "Africa/Tunis"},
	{"algerian", "Africa/Algiers"},
	{"moroccan", "Africa/Casablanca"},
	{"nigerian", "Africa/Lagos"},
	{"kenyan", "Africa/Nairobi"},
	{"ethiopian", "Africa/Addis_Ababa"},
	{"south african", "Africa/Johannesburg"},
	{"turkish", "Europe/Istanbul"},
	{"british", "Europe/London"},
	{"irish", "Europe/Dublin"},
	{"french", "Europe/Paris"},
	{"german", "Europe/Berlin"},
	{"spanish", "Europe/Madrid"},
	{"italian", "Europe/Rome"},
	{"dutch", "Europe/Amsterdam"},
	{"russian", "Europe/Moscow"},
	{"iranian", "Asia/Tehran"},
	{"pakistani", "Asia/Karachi"},
	{"indian", "Asia/Kolkata"},
	{"bangladeshi", "Asia/Dhaka"},
	{"malaysian", "Asia/Kuala_Lumpur"},
	{"indonesian", "Asia/Jakarta"},
	{"filipino", "Asia/Manila"},
	{"chinese", "Asia/Shanghai"},
	{"japanese", "Asia/Tokyo"},
	{"korean", "Asia/Seoul"},
	{"american", "America/New_York"},
	{"canadian", "America/Toronto"},
	{"mexican", "America/Mexico_City"},
	{"brazilian", "America/Sao_Paulo"},
	{"australian", "Australia/Sydney"},
}
