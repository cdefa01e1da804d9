package lexicon

// seedEntries defines the built-in phrase tables. Phrases are lowercase
// and matched on word boundaries.
var seedEntries = []Entry{
	// Difficulty scoring
	{
		Name:        BeginnerKeywords,
		Description: "Phrasing typical of recall-level questions",
		Phrases: []string{
			"common pathogen",
			"which of the following is",
			"what is the recommended",
			"standard treatment",
			"first-line",
			"empiric",
			"typical",
		},
	},
	{
		Name:        IntermediateKeywords,
		Description: "Phrasing that asks for clinical judgement",
		Phrases: []string{
			"clinical consideration",
			"duration of therapy",
			"switch to oral",
			"culture results",
			"susceptibility testing",
			"resistance patterns",
			"moderate/severe",
		},
	},
	{
		Name:        AdvancedKeywords,
		Description: "Complicated presentations and management failures",
		Phrases: []string{
			"insufficient source control",
			"parenchymal brain infection",
			"cerebritis",
			"rhombencephalitis",
			"brain abscess",
			"inadequate débridement",
			"intracranial extension",
			"osteomyelitis",
			"antibiotic resistance",
			"retained vascular catheter",
			"complex infections",
		},
	},
	{
		Name:        ComplexConditions,
		Description: "Conditions that make a question advanced on their own",
		Phrases: []string{
			"meningitis",
			"mastoiditis",
			"osteomyelitis",
			"septic arthritis",
			"endocarditis",
			"retropharyngeal abscess",
			"orbital cellulitis",
			"bloodstream infection",
		},
	},
	{
		Name:        BasicConditions,
		Description: "Common outpatient conditions",
		Phrases: []string{
			"cellulitis",
			"pharyngitis",
			"otitis media",
			"sinusitis",
			"pneumonia",
			"uti",
		},
	},

	// Medical accuracy
	{
		Name:        AntibioticNames,
		Description: "Antimicrobial agents",
		Phrases: []string{
			"penicillin", "amoxicillin", "ampicillin", "cephalexin", "ceftriaxone",
			"cefazolin", "vancomycin", "linezolid", "daptomycin", "clindamycin",
			"azithromycin", "erythromycin", "ciprofloxacin", "levofloxacin",
			"trimethoprim-sulfamethoxazole", "gentamicin", "amikacin", "tobramycin",
			"meropenem", "imipenem", "ertapenem", "piperacillin-tazobactam",
			"ceftazidime", "cefepime", "tigecycline", "colistin", "doxycycline",
			"minocycline", "rifampin", "isoniazid", "ethambutol", "pyrazinamide",
		},
	},
	{
		Name:        PathogenNames,
		Description: "Bacterial pathogens",
		Phrases: []string{
			"staphylococcus aureus", "streptococcus pneumoniae", "streptococcus pyogenes",
			"enterococcus", "escherichia coli", "klebsiella pneumoniae", "pseudomonas aeruginosa",
			"acinetobacter", "haemophilus influenzae", "moraxella catarrhalis",
			"neisseria meningitidis", "neisseria gonorrhoeae", "listeria monocytogenes",
			"clostridium difficile", "bacteroides", "prevotella", "fusobacterium",
			"mycobacterium tuberculosis", "chlamydia", "mycoplasma", "legionella",
		},
	},
	{
		Name:        ResistanceMechanisms,
		Description: "Mechanisms of antimicrobial resistance",
		Phrases: []string{
			"beta-lactamase", "esbl", "carbapenemase", "efflux pump", "target modification",
			"ribosomal mutation", "cell wall alteration", "enzymatic inactivation",
			"reduced permeability", "biofilm formation", "vancomycin resistance",
		},
	},
	{
		Name:        ClinicalTerms,
		Description: "Infectious syndromes",
		Phrases: []string{
			"meningitis", "pneumonia", "cellulitis", "sepsis", "osteomyelitis",
			"endocarditis", "pyelonephritis", "cystitis", "sinusitis", "otitis media",
			"pharyngitis", "abscess", "bacteremia", "septic arthritis", "peritonitis",
		},
	},
	{
		Name:        AntibioticContext,
		Description: "Stem words that place an antibiotic in a treatment context",
		Phrases:     []string{"therapy", "treatment", "antibiotic"},
	},
	{
		Name:        PathogenContext,
		Description: "Stem words that place a pathogen in an infection context",
		Phrases:     []string{"pathogen", "bacteria", "organism", "infection"},
	},
	{
		Name:        ResistanceContext,
		Description: "Stem words that place a mechanism in a resistance context",
		Phrases:     []string{"resistance", "resistant", "mechanism"},
	},
	{
		Name:        ClinicalContext,
		Description: "Stem words that place a syndrome in a patient context",
		Phrases: []string{
			"patient", "infection", "treatment", "therapy", "diagnosis",
			"management", "presents",
		},
	},
	{
		Name:        MRSABetaLactams,
		Description: "Beta-lactams with no activity against MRSA",
		Phrases:     []string{"penicillin", "amoxicillin", "cephalexin"},
	},
	{
		Name:        ESBLCephalosporins,
		Description: "Cephalosporins hydrolysed by ESBL producers",
		Phrases:     []string{"ceftriaxone", "ceftazidime"},
	},
	{
		Name:        AmbiguousMarkers,
		Description: "Hedging words that make a stem ambiguous",
		Phrases:     []string{"maybe", "possibly", "sometimes", "often"},
	},
	{
		Name:        CausalConnectives,
		Description: "Connectives that signal a reasoned explanation",
		Phrases:     []string{"because", "due to", "since", "as"},
	},
	{
		Name:        BeginnerForbiddenTerms,
		Description: "Terminology too advanced for a beginner question",
		Phrases:     []string{"resistance", "mechanism", "pharmacokinetics", "bioavailability"},
	},
	{
		Name:        BasicTerms,
		Description: "Words suggesting a routine presentation",
		Phrases:     []string{"common", "typical", "standard", "usual"},
	},
	{
		Name:        AdvancedIndicators,
		Description: "Words that justify an advanced label despite basic phrasing",
		Phrases:     []string{"resistance", "mechanism", "complicated", "multiple"},
	},

	// Resistance scenarios
	{
		Name:        MRSATherapy,
		Description: "Agents an MRSA scenario explanation should name",
		Phrases:     []string{"vancomycin", "linezolid"},
	},
	{
		Name:        ESBLTherapy,
		Description: "Agents an ESBL scenario explanation should name",
		Phrases:     []string{"carbapenem", "meropenem"},
	},
	{
		Name:        VRETherapy,
		Description: "Agents a VRE scenario explanation should name",
		Phrases:     []string{"linezolid", "daptomycin"},
	},
}
