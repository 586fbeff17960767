package catalog

// Static catalog tables. Candidate order within each list is the
// recommendation order surfaced to callers and must stay stable.

var medicineTable = map[string]map[Tier]map[AgeGroup][]Medicine{
	CategoryFever: {
		TierMild: {
			AgeAdult: {
				{Name: "Paracetamol (Acetaminophen)", Dosage: "500mg every 6 hours", MaxDaily: "4g/day", Source: "WHO Model List of Essential Medicines", Note: "Avoid other products containing paracetamol"},
			},
			AgeChild: {
				{Name: "Paracetamol syrup", Dosage: "10-15mg/kg every 6 hours", MaxDaily: "60mg/kg/day", Source: "FDA OTC monograph, pediatric dosing", Note: "Use the measuring device supplied with the pack"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Paracetamol (Acetaminophen)", Dosage: "650mg every 6 hours", MaxDaily: "4g/day", Source: "WHO Model List of Essential Medicines"},
				{Name: "Ibuprofen", Dosage: "400mg every 8 hours with food", MaxDaily: "1.2g/day OTC", Source: "FDA OTC monograph", Note: "Take with food"},
			},
			AgeChild: {
				{Name: "Paracetamol syrup", Dosage: "10-15mg/kg every 6 hours", MaxDaily: "60mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
				{Name: "Ibuprofen pediatric syrup", Dosage: "5-10mg/kg every 8 hours with food", MaxDaily: "30mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
			},
		},
	},
	CategoryHeadache: {
		TierMild: {
			AgeAdult: {
				{Name: "Paracetamol (Acetaminophen)", Dosage: "500mg every 6 hours", MaxDaily: "4g/day", Source: "WHO Model List of Essential Medicines"},
			},
			AgeChild: {
				{Name: "Paracetamol syrup", Dosage: "10-15mg/kg every 6 hours", MaxDaily: "60mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Paracetamol (Acetaminophen)", Dosage: "650mg every 6 hours", MaxDaily: "4g/day", Source: "WHO Model List of Essential Medicines"},
				{Name: "Ibuprofen", Dosage: "400mg every 8 hours with food", MaxDaily: "1.2g/day OTC", Source: "FDA OTC monograph", Note: "Take with food"},
				{Name: "Aspirin", Dosage: "300-600mg every 4-6 hours with food", MaxDaily: "4g/day", Source: "FDA OTC monograph", Note: "Take with food"},
			},
			AgeChild: {
				{Name: "Paracetamol syrup", Dosage: "10-15mg/kg every 6 hours", MaxDaily: "60mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
				{Name: "Ibuprofen pediatric syrup", Dosage: "5-10mg/kg every 8 hours with food", MaxDaily: "30mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
			},
		},
	},
	CategoryCoughDry: {
		TierMild: {
			AgeAdult: {
				{Name: "Menthol lozenges", Dosage: "1 lozenge dissolved slowly, every 2 hours as needed", MaxDaily: "10 lozenges/day", Source: "FDA OTC monograph"},
				{Name: "Honey-based cough syrup", Dosage: "10ml up to 4 times daily", MaxDaily: "40ml/day", Source: "NHS cough guidance"},
			},
			AgeChild: {
				{Name: "Honey-based cough syrup", Dosage: "5ml up to 3 times daily", MaxDaily: "15ml/day", Source: "NHS cough guidance", Note: "Never give honey to children under 1 year"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Dextromethorphan", Dosage: "10-20mg every 4 hours", MaxDaily: "120mg/day", Source: "FDA OTC monograph", Note: "Do not use for a productive cough"},
				{Name: "Menthol lozenges", Dosage: "1 lozenge dissolved slowly, every 2 hours as needed", MaxDaily: "10 lozenges/day", Source: "FDA OTC monograph"},
			},
			AgeChild: {
				{Name: "Dextromethorphan pediatric syrup", Dosage: "as per weight band on pack, every 6-8 hours", MaxDaily: "per pack label", Source: "FDA OTC monograph, pediatric dosing"},
				{Name: "Honey-based cough syrup", Dosage: "5ml up to 3 times daily", MaxDaily: "15ml/day", Source: "NHS cough guidance", Note: "Never give honey to children under 1 year"},
			},
		},
	},
	CategoryCoughWet: {
		TierMild: {
			AgeAdult: {
				{Name: "Guaifenesin", Dosage: "200-400mg every 4 hours", MaxDaily: "2.4g/day", Source: "FDA OTC monograph", Note: "Drink plenty of water"},
			},
			AgeChild: {
				{Name: "Guaifenesin pediatric syrup", Dosage: "as per weight band on pack, every 4 hours", MaxDaily: "per pack label", Source: "FDA OTC monograph, pediatric dosing", Note: "Ages 4 and up"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Guaifenesin", Dosage: "400mg every 4 hours", MaxDaily: "2.4g/day", Source: "FDA OTC monograph", Note: "Drink plenty of water"},
				{Name: "Guaifenesin + Pseudoephedrine combination", Dosage: "1 tablet every 12 hours", MaxDaily: "2 tablets/day", Source: "FDA OTC monograph", Note: "May raise blood pressure"},
			},
			AgeChild: {
				{Name: "Guaifenesin pediatric syrup", Dosage: "as per weight band on pack, every 4 hours", MaxDaily: "per pack label", Source: "FDA OTC monograph, pediatric dosing", Note: "Ages 4 and up"},
			},
		},
	},
	CategorySoreThroat: {
		TierMild: {
			AgeAdult: {
				{Name: "Menthol lozenges", Dosage: "1 lozenge dissolved slowly, every 2 hours as needed", MaxDaily: "10 lozenges/day", Source: "FDA OTC monograph"},
			},
			AgeChild: {
				{Name: "Menthol lozenges", Dosage: "1 lozenge dissolved slowly, up to 6 per day", MaxDaily: "6 lozenges/day", Source: "FDA OTC monograph", Note: "Ages 6 and up; choking hazard for younger children"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Benzocaine lozenges", Dosage: "1 lozenge every 2 hours as needed", MaxDaily: "8 lozenges/day", Source: "FDA OTC monograph"},
				{Name: "Paracetamol (Acetaminophen)", Dosage: "500mg every 6 hours", MaxDaily: "4g/day", Source: "WHO Model List of Essential Medicines"},
			},
			AgeChild: {
				{Name: "Paracetamol syrup", Dosage: "10-15mg/kg every 6 hours", MaxDaily: "60mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
			},
		},
	},
	CategoryCold: {
		TierMild: {
			AgeAdult: {
				{Name: "Saline nasal spray", Dosage: "1-2 sprays per nostril as needed", MaxDaily: "no fixed limit", Source: "NHS common cold guidance"},
				{Name: "Cetirizine", Dosage: "10mg once daily", MaxDaily: "10mg/day", Source: "FDA OTC monograph", Note: "May cause drowsiness"},
			},
			AgeChild: {
				{Name: "Saline nasal drops", Dosage: "1-2 drops per nostril before feeds/sleep", MaxDaily: "no fixed limit", Source: "NHS common cold guidance"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Pseudoephedrine", Dosage: "60mg every 6 hours", MaxDaily: "240mg/day", Source: "FDA OTC monograph", Note: "May raise blood pressure and cause insomnia"},
				{Name: "Phenylephrine", Dosage: "10mg every 4 hours", MaxDaily: "60mg/day", Source: "FDA OTC monograph", Note: "May raise blood pressure"},
				{Name: "Cetirizine", Dosage: "10mg once daily", MaxDaily: "10mg/day", Source: "FDA OTC monograph", Note: "May cause drowsiness"},
			},
			AgeChild: {
				{Name: "Saline nasal drops", Dosage: "1-2 drops per nostril before feeds/sleep", MaxDaily: "no fixed limit", Source: "NHS common cold guidance"},
				{Name: "Paracetamol syrup", Dosage: "10-15mg/kg every 6 hours", MaxDaily: "60mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
			},
		},
	},
	CategoryBodyPain: {
		TierMild: {
			AgeAdult: {
				{Name: "Paracetamol (Acetaminophen)", Dosage: "500mg every 6 hours", MaxDaily: "4g/day", Source: "WHO Model List of Essential Medicines"},
			},
			AgeChild: {
				{Name: "Paracetamol syrup", Dosage: "10-15mg/kg every 6 hours", MaxDaily: "60mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Ibuprofen", Dosage: "400mg every 8 hours with food", MaxDaily: "1.2g/day OTC", Source: "FDA OTC monograph", Note: "Take with food"},
				{Name: "Paracetamol (Acetaminophen)", Dosage: "650mg every 6 hours", MaxDaily: "4g/day", Source: "WHO Model List of Essential Medicines"},
				{Name: "Diclofenac gel", Dosage: "apply thin layer to the painful area 3-4 times daily", MaxDaily: "32g/day total gel", Source: "FDA OTC monograph", Note: "External use only"},
			},
			AgeChild: {
				{Name: "Paracetamol syrup", Dosage: "10-15mg/kg every 6 hours", MaxDaily: "60mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
				{Name: "Ibuprofen pediatric syrup", Dosage: "5-10mg/kg every 8 hours with food", MaxDaily: "30mg/kg/day", Source: "FDA OTC monograph, pediatric dosing"},
			},
		},
	},
	CategoryDiarrhea: {
		TierMild: {
			AgeAdult: {
				{Name: "Oral rehydration salts (ORS)", Dosage: "1 sachet in 1L water, sip through the day", MaxDaily: "as needed to replace losses", Source: "WHO diarrhoeal disease guidance"},
			},
			AgeChild: {
				{Name: "Oral rehydration salts (ORS)", Dosage: "small frequent sips after each loose stool", MaxDaily: "as needed to replace losses", Source: "WHO diarrhoeal disease guidance"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Oral rehydration salts (ORS)", Dosage: "1 sachet in 1L water, sip through the day", MaxDaily: "as needed to replace losses", Source: "WHO diarrhoeal disease guidance"},
				{Name: "Loperamide", Dosage: "2mg after each loose stool", MaxDaily: "8mg/day OTC", Source: "FDA OTC monograph", Note: "Do not use with fever or bloody stool"},
			},
			AgeChild: {
				{Name: "Oral rehydration salts (ORS)", Dosage: "small frequent sips after each loose stool", MaxDaily: "as needed to replace losses", Source: "WHO diarrhoeal disease guidance"},
				{Name: "Zinc supplement", Dosage: "20mg once daily for 10-14 days", MaxDaily: "20mg/day", Source: "WHO diarrhoeal disease guidance"},
			},
		},
	},
	CategoryAcidity: {
		TierMild: {
			AgeAdult: {
				{Name: "Antacid (calcium carbonate)", Dosage: "500-1000mg as symptoms occur", MaxDaily: "7g/day", Source: "FDA OTC monograph"},
			},
			AgeChild: {
				{Name: "Antacid suspension (pediatric)", Dosage: "as per pack label after meals", MaxDaily: "per pack label", Source: "FDA OTC monograph, pediatric dosing", Note: "Ages 2 and up"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Antacid (calcium carbonate)", Dosage: "500-1000mg as symptoms occur", MaxDaily: "7g/day", Source: "FDA OTC monograph"},
				{Name: "Omeprazole", Dosage: "20mg once daily before breakfast", MaxDaily: "20mg/day, max 14 days OTC", Source: "FDA OTC monograph", Note: "Ages 18 and up; not for immediate relief"},
			},
			AgeChild: {
				{Name: "Antacid suspension (pediatric)", Dosage: "as per pack label after meals", MaxDaily: "per pack label", Source: "FDA OTC monograph, pediatric dosing", Note: "Ages 2 and up"},
			},
		},
	},
	CategoryAllergy: {
		TierMild: {
			AgeAdult: {
				{Name: "Loratadine", Dosage: "10mg once daily", MaxDaily: "10mg/day", Source: "FDA OTC monograph", Note: "Non-drowsy for most people"},
				{Name: "Hydrocortisone cream 1%", Dosage: "thin layer on affected skin 2-3 times daily", MaxDaily: "per pack label", Source: "FDA OTC monograph", Note: "External use only; not on the face without advice"},
			},
			AgeChild: {
				{Name: "Loratadine syrup", Dosage: "5mg once daily", MaxDaily: "5mg/day", Source: "FDA OTC monograph, pediatric dosing", Note: "Ages 2 and up"},
				{Name: "Hydrocortisone cream 1%", Dosage: "thin layer on affected skin 2 times daily", MaxDaily: "per pack label", Source: "FDA OTC monograph", Note: "Ages 2 and up; external use only"},
			},
		},
		TierModerate: {
			AgeAdult: {
				{Name: "Cetirizine", Dosage: "10mg once daily", MaxDaily: "10mg/day", Source: "FDA OTC monograph", Note: "May cause drowsiness"},
				{Name: "Loratadine", Dosage: "10mg once daily", MaxDaily: "10mg/day", Source: "FDA OTC monograph", Note: "Non-drowsy for most people"},
				{Name: "Diphenhydramine", Dosage: "25-50mg every 6 hours", MaxDaily: "300mg/day", Source: "FDA OTC monograph", Note: "Causes drowsiness; do not drive"},
			},
			AgeChild: {
				{Name: "Cetirizine pediatric syrup", Dosage: "5mg once daily", MaxDaily: "5mg/day", Source: "FDA OTC monograph, pediatric dosing", Note: "Ages 2 and up"},
				{Name: "Loratadine syrup", Dosage: "5mg once daily", MaxDaily: "5mg/day", Source: "FDA OTC monograph, pediatric dosing", Note: "Ages 2 and up"},
			},
		},
	},
}

var homeRemedies = map[string][]string{
	CategoryFever: {
		"Sponge with lukewarm (not cold) water",
		"Wear light clothing and keep the room ventilated",
		"Drink water, clear soups, or diluted juice regularly",
		"Rest until the fever settles",
	},
	CategoryHeadache: {
		"Drink 2 glasses of water slowly; dehydration is a common trigger",
		"Rest in a quiet, dark room",
		"Apply a cold compress to the forehead or back of the neck",
		"Keep regular sleep hours",
	},
	CategoryCoughDry: {
		"Take 1 teaspoon of honey in warm water (not for children under 1 year)",
		"Steam inhalation for 5-10 minutes",
		"Use a humidifier or keep a bowl of water near the heater",
		"Sip warm fluids through the day",
	},
	CategoryCoughWet: {
		"Steam inhalation to loosen mucus",
		"Sit or sleep propped up rather than lying flat",
		"Drink warm soup or tea",
		"Drink extra water to thin secretions",
	},
	CategorySoreThroat: {
		"Gargle with warm salt water (half a teaspoon of salt in a glass)",
		"Sip warm tea with honey",
		"Suck on a lozenge to keep the throat moist",
		"Rest your voice",
	},
	CategoryCold: {
		"Steam inhalation for blocked nose",
		"Drink warm fluids regularly",
		"Rinse the nose with saline",
		"Rest and sleep with the head slightly raised",
	},
	CategoryBodyPain: {
		"Apply a warm compress to the painful area",
		"Gentle stretching if pain allows",
		"Rest in a comfortable position",
		"A warm bath before sleep",
	},
	CategoryDiarrhea: {
		"Sip oral rehydration solution through the day",
		"Eat bland food: banana, rice, applesauce, toast",
		"Avoid dairy, caffeine, and greasy food until settled",
		"Wash hands thoroughly to avoid spreading infection",
	},
	CategoryAcidity: {
		"Eat smaller meals more often",
		"Stay upright for 2-3 hours after eating",
		"Raise the head of the bed slightly",
		"Avoid trigger foods you already know",
	},
	CategoryAllergy: {
		"Avoid the known trigger where possible",
		"Apply a cool compress to itchy skin",
		"Wear loose cotton clothing over affected areas",
		"Keep fingernails short to limit scratching damage",
	},
}

var avoidList = map[string][]string{
	CategoryFever: {
		"Alcohol",
		"Strenuous exercise",
		"Combination cold products that also contain paracetamol (double-dosing risk)",
		"Heavy blankets and overdressing",
	},
	CategoryHeadache: {
		"Long screen sessions without breaks",
		"Skipping meals",
		"Excess caffeine",
		"Bright or flickering light",
	},
	CategoryCoughDry: {
		"Smoking and smoky rooms",
		"Dusty environments",
		"Cold dry air",
		"Shouting or straining the voice",
	},
	CategoryCoughWet: {
		"Cough suppressants (a productive cough should not be suppressed)",
		"Smoking",
		"Lying flat right after coughing fits",
		"Dehydration",
	},
	CategorySoreThroat: {
		"Smoking and second-hand smoke",
		"Very hot drinks",
		"Acidic juices",
		"Shouting or whispering for long periods",
	},
	CategoryCold: {
		"Antibiotics without prescription (colds are viral)",
		"Overuse of decongestant sprays beyond 3 days",
		"Dehydration",
		"Close contact with infants and the elderly while symptomatic",
	},
	CategoryBodyPain: {
		"Heavy lifting",
		"Complete bed rest beyond 1-2 days",
		"Alcohol while taking painkillers",
		"High-intensity exercise until pain settles",
	},
	CategoryDiarrhea: {
		"Dairy products",
		"Caffeine and alcohol",
		"Spicy and greasy food",
		"Anti-diarrheal tablets if there is fever or blood in the stool",
	},
	CategoryAcidity: {
		"Spicy, fried, and very fatty food",
		"Caffeine and carbonated drinks",
		"Alcohol",
		"Lying down within 2 hours of a meal",
		"Late-night heavy meals",
	},
	CategoryAllergy: {
		"Known triggers (foods, pollen, pet dander)",
		"Scratching affected skin",
		"Hot showers over itchy areas",
		"New cosmetics or detergents during a flare",
	},
}

var redFlags = map[string][]string{
	CategoryFever: {
		"Temperature above 39.4C / 103F",
		"Fever lasting more than 3 days",
		"Stiff neck, severe headache, or rash with fever",
		"Confusion or unusual drowsiness",
	},
	CategoryHeadache: {
		"Sudden, worst-ever (thunderclap) headache",
		"Headache with fever and stiff neck",
		"Headache after a head injury",
		"Vision changes, weakness, or numbness",
	},
	CategoryCoughDry: {
		"Cough lasting more than 3 weeks",
		"Coughing up blood",
		"Shortness of breath or chest pain",
		"High fever with the cough",
	},
	CategoryCoughWet: {
		"Blood in the phlegm",
		"Rusty or green sputum with high fever",
		"Difficulty breathing or wheezing",
		"Cough lasting more than 3 weeks",
	},
	CategorySoreThroat: {
		"Difficulty swallowing or breathing",
		"Drooling or muffled voice",
		"High fever beyond 48 hours",
		"White patches on the tonsils with fever",
	},
	CategoryCold: {
		"Symptoms beyond 10 days without improvement",
		"Severe sinus pain or swelling around the eyes",
		"High fever",
		"Ear pain or discharge",
	},
	CategoryBodyPain: {
		"Pain following significant trauma",
		"A joint that is hot, swollen, and red",
		"Chest pain or pressure",
		"Weakness, numbness, or loss of bladder control",
	},
	CategoryDiarrhea: {
		"Blood or black color in the stool",
		"Signs of dehydration: very little urine, dizziness, dry mouth",
		"High fever",
		"No improvement after 2 days",
		"Severe abdominal pain",
	},
	CategoryAcidity: {
		"Chest pain spreading to the arm, neck, or jaw",
		"Difficulty or pain on swallowing",
		"Black stools or vomiting blood",
		"Unintended weight loss",
	},
	CategoryAllergy: {
		"Swelling of the face, lips, or tongue",
		"Difficulty breathing or tightness in the throat",
		"Dizziness or fainting",
		"Rapidly spreading hives",
	},
}

var immediateActions = map[string][]string{
	CategoryFever: {
		"RIGHT NOW: Remove excess clothing, stay in a cool room (not cold)",
		"WITHIN 1 HOUR: Drink 2-3 glasses of water slowly",
		"WITHIN 2 HOURS: Apply a damp cloth to forehead and wrists",
	},
	CategoryHeadache: {
		"RIGHT NOW: Lie down in a quiet, dark room for 15-20 minutes",
		"WITHIN 30 MIN: Drink 2 glasses of water slowly (dehydration causes headaches)",
		"WITHIN 1 HOUR: Apply a cold compress to the forehead or back of the neck",
	},
	CategoryCoughDry: {
		"RIGHT NOW: Sip warm water slowly to soothe the throat",
		"WITHIN 30 MIN: Take 1 tsp honey in warm water (natural cough suppressant)",
		"WITHIN 1 HOUR: Steam inhalation or humidifier for 5-10 minutes",
	},
	CategoryCoughWet: {
		"RIGHT NOW: Sit upright (don't lie flat) to help drainage",
		"WITHIN 30 MIN: Steam inhalation to loosen mucus",
		"WITHIN 1 HOUR: Drink warm soup or tea",
	},
	CategorySoreThroat: {
		"RIGHT NOW: Gargle with warm salt water (1/2 tsp salt in warm water)",
		"WITHIN 30 MIN: Sip warm tea with honey",
		"WITHIN 1 HOUR: Use a throat lozenge or spray",
	},
	CategoryBodyPain: {
		"RIGHT NOW: Rest in a comfortable position, avoid movement",
		"WITHIN 30 MIN: Apply a warm compress to the affected area",
		"WITHIN 1 HOUR: Gentle stretching if pain allows",
	},
}

var defaultImmediateActions = []string{
	"RIGHT NOW: Rest and avoid strenuous activity",
	"WITHIN 1 HOUR: Drink plenty of fluids (water, warm tea)",
	"WITHIN 2 HOURS: Monitor symptoms and note any changes",
}

var supportiveCare = []string{
	"Rest and avoid strenuous activity",
	"Stay well hydrated (water, ORS)",
	"Monitor symptoms closely",
	"Keep emergency contacts ready",
}
