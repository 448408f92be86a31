package naics

// SectorNames maps 2-digit NAICS sector codes to their official titles.
// Source: Census Bureau 2022 NAICS.
var SectorNames = map[string]string{
	"11": "Agriculture, Forestry, Fishing and Hunting",
	"21": "Mining, Quarrying, and Oil and Gas Extraction",
	"22": "Utilities",
	"23": "Construction",
	"31": "Manufacturing",
	"32": "Manufacturing",
	"33": "Manufacturing",
	"42": "Wholesale Trade",
	"44": "Retail Trade",
	"45": "Retail Trade",
	"48": "Transportation and Warehousing",
	"49": "Transportation and Warehousing",
	"51": "Information",
	"52": "Finance and Insurance",
	"53": "Real Estate and Rental and Leasing",
	"54": "Professional, Scientific, and Technical Services",
	"55": "Management of Companies and Enterprises",
	"56": "Administrative and Support and Waste Management",
	"61": "Educational Services",
	"62": "Health Care and Social Assistance",
	"71": "Arts, Entertainment, and Recreation",
	"72": "Accommodation and Food Services",
	"81": "Other Services (except Public Administration)",
	"92": "Public Administration",
}

// IndustryGroupNames maps 4-digit industry group codes to titles. The table
// covers the industry groups of the builtin entries; a missing group is a
// normal lookup miss, not a data error.
var IndustryGroupNames = map[string]string{
	"2211": "Electric Power Generation, Transmission and Distribution",
	"2382": "Building Equipment Contractors",
	"5112": "Software Publishers",
	"5182": "Computing Infrastructure Providers, Data Processing, Web Hosting, and Related Services",
	"5221": "Depository Credit Intermediation",
	"5242": "Agencies, Brokerages, and Other Insurance Related Activities",
	"5312": "Offices of Real Estate Agents and Brokers",
	"5413": "Architectural, Engineering, and Related Services",
	"5415": "Computer Systems Design and Related Services",
	"5416": "Management, Scientific, and Technical Consulting Services",
	"5417": "Scientific Research and Development Services",
	"5611": "Office Administrative Services",
	"5613": "Employment Services",
	"5617": "Services to Buildings and Dwellings",
	"6111": "Elementary and Secondary Schools",
	"6211": "Offices of Physicians",
	"6212": "Offices of Dentists",
	"7225": "Restaurants and Other Eating Places",
	"8111": "Automotive Repair and Maintenance",
	"8121": "Personal Care Services",
}

// builtinEntries is the builtin classification table, in Census publication
// order. Descriptions are abbreviated from the official definitions.
var builtinEntries = []Entry{
	{
		Code:        "221114",
		Title:       "Solar Electric Power Generation",
		Description: "Establishments primarily engaged in operating solar electric power generation facilities that convert sunlight into electricity for provision to transmission systems.",
	},
	{
		Code:        "238220",
		Title:       "Plumbing, Heating, and Air-Conditioning Contractors",
		Description: "Establishments primarily engaged in installing and servicing plumbing, heating, and air-conditioning equipment.",
	},
	{
		Code:        "511210",
		Title:       "Software Publishers",
		Description: "Establishments primarily engaged in computer software publishing, including design, documentation, installation support, and distribution.",
	},
	{
		Code:        "518210",
		Title:       "Computing Infrastructure Providers",
		Description: "Establishments primarily engaged in providing computing infrastructure, data processing services, web hosting services, and related services.",
	},
	{
		Code:        "522110",
		Title:       "Commercial Banking",
		Description: "Establishments primarily engaged in accepting demand and other deposits and making commercial, industrial, and consumer loans.",
	},
	{
		Code:        "524210",
		Title:       "Insurance Agencies and Brokerages",
		Description: "Establishments primarily engaged in acting as agents or brokers in selling annuities and insurance policies.",
	},
	{
		Code:        "531210",
		Title:       "Offices of Real Estate Agents and Brokers",
		Description: "Establishments primarily engaged in acting as agents or brokers in selling, buying, or renting real estate for others.",
	},
	{
		Code:        "541330",
		Title:       "Engineering Services",
		Description: "Establishments primarily engaged in applying physical laws and principles of engineering in the design, development, and utilization of machines, materials, structures, and systems.",
	},
	{
		Code:        "541511",
		Title:       "Custom Computer Programming Services",
		Description: "Establishments primarily engaged in writing, modifying, testing, and supporting software to meet the needs of a particular customer.",
	},
	{
		Code:        "541512",
		Title:       "Computer Systems Design Services",
		Description: "Establishments primarily engaged in planning and designing computer systems that integrate computer hardware, software, and communication technologies.",
	},
	{
		Code:        "541611",
		Title:       "Administrative Management Consulting Services",
		Description: "Establishments primarily engaged in providing operating advice and assistance on administrative management issues.",
	},
	{
		Code:        "541613",
		Title:       "Marketing Consulting Services",
		Description: "Establishments primarily engaged in providing operating advice and assistance on marketing issues, such as new product development and pricing.",
	},
	{
		Code:        "541711",
		Title:       "Research and Development in Biotechnology",
		Description: "Establishments primarily engaged in conducting biotechnology research and experimental development.",
	},
	{
		Code:        "561110",
		Title:       "Office Administrative Services",
		Description: "Establishments primarily engaged in providing a range of day-to-day office administrative services, such as financial planning, billing, personnel, and logistics.",
	},
	{
		Code:        "561311",
		Title:       "Employment Placement Agencies",
		Description: "Establishments primarily engaged in listing employment vacancies and referring or placing applicants for employment.",
	},
	{
		Code:        "561320",
		Title:       "Temporary Help Services",
		Description: "Establishments primarily engaged in supplying workers to clients' businesses for limited periods of time to supplement the client workforce.",
	},
	{
		Code:        "561720",
		Title:       "Janitorial Services",
		Description: "Establishments primarily engaged in cleaning building interiors, interiors of transportation equipment, and windows.",
	},
	{
		Code:        "611110",
		Title:       "Elementary and Secondary Schools",
		Description: "",
	},
	{
		Code:        "621111",
		Title:       "Offices of Physicians (except Mental Health Specialists)",
		Description: "Establishments of health practitioners having the degree of M.D. or D.O. primarily engaged in the independent practice of general or specialized medicine.",
	},
	{
		Code:        "621210",
		Title:       "Offices of Dentists",
		Description: "Establishments of health practitioners having the degree of D.M.D., D.D.S., or D.D.Sc. primarily engaged in the independent practice of general or specialized dentistry.",
	},
	{
		Code:        "722511",
		Title:       "Full-Service Restaurants",
		Description: "Establishments primarily engaged in providing food services to patrons who order and are served while seated and pay after eating.",
	},
	{
		Code:        "722513",
		Title:       "Limited-Service Restaurants",
		Description: "Establishments primarily engaged in providing food services where patrons order or select items and pay before eating.",
	},
	{
		Code:        "811111",
		Title:       "General Automotive Repair",
		Description: "Establishments primarily engaged in providing a wide range of mechanical and electrical repair and maintenance services for automotive vehicles.",
	},
	{
		Code:        "812111",
		Title:       "Barber Shops",
		Description: "Establishments known as barber shops or men's hair stylist shops primarily engaged in cutting, trimming, and styling men's and boys' hair.",
	},
	{
		Code:        "812112",
		Title:       "Beauty Salons",
		Description: "Establishments primarily engaged in providing hair care services, and in providing combinations of hair, nail, and skin care services.",
	},
}
