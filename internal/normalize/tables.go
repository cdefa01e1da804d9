package normalize

// categoryAliases maps lowercased category spellings to canonical names.
var categoryAliases = map[string]string{
	"genitourinary":                        "Genitourinary",
	"gu":                                   "Genitourinary",
	"respiratory":                          "Respiratory",
	"resp":                                 "Respiratory",
	"cns":                                  "Central Nervous System",
	"central nervous system":               "Central Nervous System",
	"skin":                                 "Skin and Soft Tissue Infections",
	"skin and soft tissue":                 "Skin and Soft Tissue Infections",
	"skin and soft tissue infections":      "Skin and Soft Tissue Infections",
	"bone":                                 "Bone/Joint",
	"joint":                                "Bone/Joint",
	"bone/joint":                           "Bone/Joint",
	"ent":                                  "Ear, Nose, and Throat",
	"ear, nose, and throat":                "Ear, Nose, and Throat",
	"eye":                                  "Ophthalmologic",
	"ophthalmologic":                       "Ophthalmologic",
	"bloodstream":                          "Bloodstream Infection in Nonneonates",
	"bloodstream infection in nonneonates": "Bloodstream Infection in Nonneonates",
	"neonatal":                             "Neonatal Fever (Term Neonates)",
	"neonatal fever (term neonates)":       "Neonatal Fever (Term Neonates)",
	"intra-abdominal":                      "Intra-abdominal",
	"abdominal":                            "Intra-abdominal",
}

// Abbreviation is one shorthand and its expansion. All-caps shorthands
// match case-sensitively so ordinary words such as "gas" or "po" survive.
type Abbreviation struct {
	Short string
	Long  string
}

// Abbreviations lists the expansions in application order: drug names,
// then organisms, then clinical shorthand.
var Abbreviations = []Abbreviation{
	{"TMP-SMX", "Trimethoprim-sulfamethoxazole"},
	{"TMP/SMX", "Trimethoprim-sulfamethoxazole"},
	{"Bactrim", "Trimethoprim-sulfamethoxazole"},
	{"Zosyn", "Piperacillin-tazobactam"},
	{"Pip-tazo", "Piperacillin-tazobactam"},
	{"Vanc", "Vancomycin"},
	{"Zyvox", "Linezolid"},
	{"Cipro", "Ciprofloxacin"},
	{"Levo", "Levofloxacin"},
	{"Rocephin", "Ceftriaxone"},
	{"Ancef", "Cefazolin"},

	{"S aureus", "Staphylococcus aureus"},
	{"S pyogenes", "Streptococcus pyogenes"},
	{"S pneumoniae", "Streptococcus pneumoniae"},
	{"E coli", "Escherichia coli"},
	{"K pneumoniae", "Klebsiella pneumoniae"},
	{"P aeruginosa", "Pseudomonas aeruginosa"},
	{"GBS", "Group B Streptococcus"},
	{"GAS", "Group A Streptococcus"},

	{"UTI", "urinary tract infection"},
	{"CAP", "community-acquired pneumonia"},
	{"VAP", "ventilator-associated pneumonia"},
	{"SSTI", "skin and soft tissue infection"},
	{"CNS", "central nervous system"},
	{"CSF", "cerebrospinal fluid"},
	{"IV", "intravenous"},
	{"PO", "oral"},
	{"IM", "intramuscular"},
	{"q8h", "every 8 hours"},
	{"q12h", "every 12 hours"},
	{"q24h", "every 24 hours"},
	{"BID", "twice daily"},
	{"TID", "three times daily"},
	{"QID", "four times daily"},
}

// conditionPatterns derive a condition id from the stem. First match wins.
var conditionPatterns = []struct {
	phrase string
	id     string
}{
	{"pneumonia", "pneumonia"},
	{"meningitis", "meningitis"},
	{"cellulitis", "cellulitis"},
	{"sepsis", "sepsis"},
	{"uti", "uti"},
	{"urinary", "uti"},
	{"osteomyelitis", "osteomyelitis"},
	{"arthritis", "septic_arthritis"},
	{"otitis", "otitis"},
	{"sinusitis", "sinusitis"},
	{"pharyngitis", "pharyngitis"},
	{"abscess", "abscess"},
	{"bloodstream", "bloodstream_infection"},
}

// categoryConditions is the condition id fallback per canonical category.
var categoryConditions = map[string]string{
	"Respiratory":                          "respiratory_infection",
	"Genitourinary":                        "genitourinary_infection",
	"Central Nervous System":               "cns_infection",
	"Skin and Soft Tissue Infections":      "skin_infection",
	"Bone/Joint":                           "bone_joint_infection",
	"Ear, Nose, and Throat":                "ent_infection",
	"Ophthalmologic":                       "eye_infection",
	"Bloodstream Infection in Nonneonates": "bloodstream_infection",
	"Neonatal Fever (Term Neonates)":       "neonatal_fever",
	"Intra-abdominal":                      "intra_abdominal_infection",
}

// GeneralCondition is the condition id when nothing else applies.
const GeneralCondition = "general_infection"
