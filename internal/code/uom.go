package code

// UN/ECE Recommendation 20 unit-of-measure codes, the subset in common use on
// Malaysian e-invoices. "XUN" is the default unit; hospitality uses "DAY".
func unitOfMeasureList() *List {
	return newCodeList("Unit of Measurement",
		"ANN", "BX", "C62", "CEN", "CMT", "CS", "CTM", "DAY", "DZN", "EA",
		"GLL", "GRM", "H87", "HUR", "KGM", "KMT", "KWH", "LTR", "MAW", "MGM",
		"MIN", "MLT", "MMT", "MON", "MTK", "MTQ", "MTR", "NMP", "NPR", "PA",
		"PCE", "PK", "PR", "SET", "SMI", "TNE", "TU", "WEE", "XBA", "XBG",
		"XBO", "XBX", "XCA", "XCR", "XCS", "XCT", "XDR", "XPA", "XPK", "XPX",
		"XRL", "XTB", "XTN", "XUN",
	)
}
