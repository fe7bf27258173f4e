package code

// Malaysian state codes per the MyInvois SDK.
func stateList() *List {
	return newList("State", map[string]string{
		"00": "All States",
		"01": "Johor",
		"02": "Kedah",
		"03": "Kelantan",
		"04": "Melaka",
		"05": "Negeri Sembilan",
		"06": "Pahang",
		"07": "Pulau Pinang",
		"08": "Perak",
		"09": "Perlis",
		"10": "Selangor",
		"11": "Terengganu",
		"12": "Sabah",
		"13": "Sarawak",
		"14": "Wilayah Persekutuan Kuala Lumpur",
		"15": "Wilayah Persekutuan Labuan",
		"16": "Wilayah Persekutuan Putrajaya",
		"17": "Not Applicable",
	})
}

// Tax type codes.
func taxTypeList() *List {
	return newList("Tax Type", map[string]string{
		"01": "Sales Tax",
		"02": "Service Tax",
		"03": "Tourism Tax",
		"04": "High-Value Goods Tax",
		"05": "Sales Tax on Low Value Goods",
		"06": "Not Applicable",
		"E":  "Tax exemption (where applicable)",
	})
}

// e-Invoice type codes.
func invoiceTypeList() *List {
	return newList("Invoice Type", map[string]string{
		"01": "Invoice",
		"02": "Credit Note",
		"03": "Debit Note",
		"04": "Refund Note",
		"11": "Self-billed Invoice",
		"12": "Self-billed Credit Note",
		"13": "Self-billed Debit Note",
		"14": "Self-billed Refund Note",
	})
}

// Payment mode codes.
func paymentModeList() *List {
	return newList("Payment Means", map[string]string{
		"01": "Cash",
		"02": "Cheque",
		"03": "Bank Transfer",
		"04": "Credit Card",
		"05": "Debit Card",
		"06": "e-Wallet / Digital Wallet",
		"07": "Digital Bank",
		"08": "Others",
	})
}

// Item classification codes (list CLASS, "001".."045").
func classificationList() *List {
	return newList("Classification", map[string]string{
		"001": "Breastfeeding equipment",
		"002": "Child care centres and kindergartens fees",
		"003": "Computer, smartphone or tablet",
		"004": "Consolidated e-Invoice",
		"005": "Construction materials",
		"006": "Disbursement",
		"007": "Donation",
		"008": "e-Commerce - e-Invoice to buyer / purchaser",
		"009": "e-Commerce - Self-billed e-Invoice to seller, logistics, etc.",
		"010": "Education fees",
		"011": "Goods on consignment (Consignor)",
		"012": "Goods on consignment (Consignee)",
		"013": "Gym membership",
		"014": "Insurance - Education and medical benefits",
		"015": "Insurance - Takaful or life insurance",
		"016": "Interest and financing expenses",
		"017": "Internet subscription",
		"018": "Medical examination for learning disabilities",
		"019": "Medical examination or vaccination expenses",
		"020": "Medical treatment",
		"021": "Membership fee",
		"022": "Others",
		"023": "Petroleum operations",
		"024": "Private retirement scheme or deferred annuity scheme",
		"025": "Motor vehicle",
		"026": "Subscription of books, journals, magazines and newspapers",
		"027": "Reimbursement",
		"028": "Rental of motor vehicle",
		"029": "EV charging facilities (Installation, rental, sale or subscription)",
		"030": "Repair and maintenance",
		"031": "Research and development",
		"032": "Foreign income",
		"033": "Self-billed - Betting and gaming",
		"034": "Self-billed - Importation of goods",
		"035": "Self-billed - Importation of services",
		"036": "Self-billed - Others",
		"037": "Self-billed - Monetary payment to agents, dealers or distributors",
		"038": "Sports equipment, rental or entry fees for sports facilities",
		"039": "Supporting equipment for disabled person",
		"040": "Voluntary contribution to approved provident fund",
		"041": "Dental examination or treatment",
		"042": "Fertility treatment",
		"043": "Treatment and home care nursing, daycare and residential care centres",
		"044": "Vouchers, gift cards, loyalty points, etc.",
		"045": "Self-billed - Non-monetary payment to agents, dealers or distributors",
	})
}
