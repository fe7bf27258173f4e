package code

// MSIC 2008 industry classification codes. The full published list runs to
// several thousand entries; this carries the sections commonly seen on
// e-invoices plus the catch-all "00000". Extending the list is additive and
// does not change validation behaviour for existing codes.
func industryList() *List {
	return newList("MSIC", map[string]string{
		"00000": "NOT APPLICABLE",
		"01111": "Growing of maize",
		"01113": "Growing of vegetables",
		"01261": "Growing of oil palm (estate)",
		"03111": "Marine fish farming",
		"05100": "Mining of hard coal",
		"06101": "Extraction of crude petroleum",
		"10711": "Manufacture of biscuits and cookies",
		"10712": "Manufacture of bread, cakes and other bakery products",
		"11041": "Manufacture of soft drinks",
		"13121": "Weaving of textiles",
		"14101": "Manufacture of wearing apparel",
		"16211": "Manufacture of veneer sheets and plywood",
		"20111": "Manufacture of basic organic chemicals",
		"22191": "Manufacture of rubber gloves",
		"25111": "Manufacture of metal structures",
		"26400": "Manufacture of consumer electronics",
		"27101": "Manufacture of electric motors and generators",
		"29101": "Manufacture of motor vehicles",
		"35101": "Generation of electricity",
		"36001": "Water collection, treatment and supply",
		"41001": "Residential building construction",
		"41002": "Non-residential building construction",
		"42101": "Construction of roads and railways",
		"45101": "Sale of new motor vehicles",
		"45201": "Maintenance and repair of motor vehicles",
		"46321": "Wholesale of meat, poultry and eggs",
		"46510": "Wholesale of computer hardware, software and peripherals",
		"46900": "Non-specialized wholesale trade",
		"47111": "Provision stores",
		"47191": "Department stores",
		"47410": "Retail sale of computers, peripheral units and software",
		"47734": "Retail sale of cosmetic and toilet articles",
		"47911": "Retail sale via internet",
		"49211": "City bus services",
		"49230": "Freight transport by road",
		"52101": "Operation of warehousing facilities",
		"53100": "Postal activities",
		"55101": "Hotels and resort hotels",
		"56103": "Restaurants and restaurant cum night clubs",
		"58201": "Publishing of software",
		"61101": "Wired telecommunications services",
		"62010": "Computer programming activities",
		"62021": "Computer consultancy",
		"62091": "Information technology service activities",
		"63111": "Data processing and hosting activities",
		"64110": "Central banking",
		"64191": "Commercial banks",
		"65110": "Life insurance",
		"66110": "Administration of financial markets",
		"68101": "Buying and selling of real estate",
		"69100": "Legal activities",
		"69200": "Accounting, bookkeeping and auditing activities",
		"70201": "Management consultancy services",
		"71101": "Architectural services",
		"72101": "Research and development on natural sciences",
		"73100": "Advertising",
		"77101": "Renting and leasing of cars",
		"79110": "Travel agency activities",
		"80100": "Private security activities",
		"81210": "General cleaning of buildings",
		"82110": "Combined office administrative service activities",
		"85211": "Primary education (government)",
		"85491": "Tutoring centres",
		"86101": "Hospital activities (government)",
		"86201": "General medical practice activities",
		"93111": "Operation of sports facilities",
		"95111": "Repair of computers and peripheral equipment",
		"96012": "Laundry services",
	})
}
