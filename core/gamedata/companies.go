package gamedata

// CompanyNames is the closed catalog of known company names, in
// canonical order. Company projections merge this list with whatever
// names appear in the save data, so removed-from-catalog companies
// still surface.
var CompanyNames = []string{
	"ECorp",
	"MegaCorp",
	"Bachman & Associates",
	"Blade Industries",
	"NWO",
	"Clarke Incorporated",
	"OmniTek Incorporated",
	"Four Sigma",
	"KuaiGong International",
	"Fulcrum Technologies",
	"Storm Technologies",
	"DefComm",
	"Helios Labs",
	"VitaLife",
	"Icarus Microsystems",
	"Universal Energy",
	"Galactic Cybersystems",
	"AeroCorp",
	"Omnia Cybersystems",
	"Solaris Space Systems",
	"DeltaOne",
	"Global Pharmaceuticals",
	"Nova Medical",
	"CompuTek",
	"NetLink Technologies",
	"Carmichael Security",
	"FoodNStuff",
	"Joe's Guns",
	"Omega Software",
	"Noodle Bar",
	"Alpha Enterprises",
	"Rho Construction",
	"Aevum Police Headquarters",
	"SysCore Securities",
	"Watchdog Security",
}

// JobTitles maps a company name to the job titles obtainable there.
// Companies absent from the map only offer the generic track.
var JobTitles = map[string][]string{
	"ECorp":                 {"Software Engineering Intern", "Junior Software Engineer", "Senior Software Engineer", "Lead Software Developer", "IT Analyst", "Business Intern", "Business Manager", "Chief Technology Officer"},
	"MegaCorp":              {"Software Engineering Intern", "Junior Software Engineer", "Senior Software Engineer", "IT Analyst", "Business Intern", "Operations Manager", "Chief Executive Officer"},
	"Bachman & Associates":  {"Business Intern", "Business Analyst", "Business Manager", "Operations Manager", "Chief Financial Officer"},
	"Blade Industries":      {"Software Engineering Intern", "IT Analyst", "Security Guard", "Security Officer"},
	"NWO":                   {"Software Engineering Intern", "Junior Software Engineer", "Business Intern", "Field Agent", "Secret Agent"},
	"Clarke Incorporated":   {"Software Engineering Intern", "IT Analyst", "Business Intern"},
	"OmniTek Incorporated":  {"Software Engineering Intern", "Junior Software Engineer", "Senior Software Engineer", "IT Analyst"},
	"Four Sigma":            {"Business Intern", "Business Analyst", "Business Manager", "Chief Financial Officer"},
	"KuaiGong International": {"Software Engineering Intern", "Security Guard", "Business Intern"},
	"Fulcrum Technologies":  {"Software Engineering Intern", "Junior Software Engineer", "Senior Software Engineer", "Lead Software Developer"},
	"Carmichael Security":   {"Security Guard", "Security Officer", "Field Agent", "Secret Agent", "Special Operative"},
	"FoodNStuff":            {"Employee", "Part-time Employee"},
	"Joe's Guns":            {"Employee", "Part-time Employee"},
	"Noodle Bar":            {"Waiter", "Part-time Waiter"},
	"Aevum Police Headquarters": {"Police Officer", "Police Chief"},
}

// KnownCompany reports whether name is part of the static catalog.
func KnownCompany(name string) bool {
	for _, known := range CompanyNames {
		if known == name {
			return true
		}
	}
	return false
}
