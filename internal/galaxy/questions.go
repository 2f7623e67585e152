package galaxy

// Question is one multiple-choice practice question.
type Question struct {
	ID           string
	Subject      Subject
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// QuestionsBySubject returns the practice questions for a subject.
func QuestionsBySubject(s Subject) []Question {
	var out []Question
	for _, q := range seedQuestions {
		if q.Subject == s {
			out = append(out, q)
		}
	}
	return out
}

// AllQuestions returns every practice question.
func AllQuestions() []Question {
	out := make([]Question, len(seedQuestions))
	copy(out, seedQuestions)
	return out
}

var seedQuestions = []Question{
	{
		ID:      "q-bio-1",
		Subject: SubjectBiology,
		Prompt:  "What is the powerhouse of the cell?",
		Options: []string{"Nucleus", "Ribosome", "Mitochondrion", "Golgi apparatus"},
		CorrectIndex: 2,
		Explanation: "Mitochondria carry out cellular respiration, converting glucose and oxygen " +
			"into ATP, the energy currency of the cell.",
	},
	{
		ID:      "q-bio-2",
		Subject: SubjectBiology,
		Prompt:  "Which process do plants use to convert sunlight into chemical energy?",
		Options: []string{"Photosynthesis", "Respiration", "Fermentation", "Transpiration"},
		CorrectIndex: 0,
		Explanation: "Photosynthesis uses light energy to turn carbon dioxide and water into " +
			"glucose and oxygen inside chloroplasts.",
	},
	{
		ID:      "q-bio-3",
		Subject: SubjectBiology,
		Prompt:  "What molecule carries the genetic instructions of living organisms?",
		Options: []string{"Protein", "DNA", "Lipid", "Glucose"},
		CorrectIndex: 1,
		Explanation: "DNA stores hereditary information in the sequence of its four bases, read " +
			"by the cell to build proteins.",
	},
	{
		ID:      "q-bio-4",
		Subject: SubjectBiology,
		Prompt:  "Approximately how long ago did life first appear on Earth?",
		Options: []string{"3.5 million years", "350 million years", "3.5 billion years", "35 billion years"},
		CorrectIndex: 2,
		Explanation: "The oldest accepted fossil evidence of microbial life is over 3.5 billion " +
			"years old, from Earth's early oceans.",
	},
	{
		ID:      "q-bio-5",
		Subject: SubjectBiology,
		Prompt:  "Why is liquid water considered essential for life as we know it?",
		Options: []string{
			"It blocks radiation",
			"It acts as a solvent for biochemical reactions",
			"It generates energy directly",
			"It produces oxygen spontaneously",
		},
		CorrectIndex: 1,
		Explanation: "Water dissolves and transports the molecules of life, letting the chemical " +
			"reactions inside cells take place.",
	},
	{
		ID:      "q-chem-1",
		Subject: SubjectChemistry,
		Prompt:  "What is the chemical symbol for gold?",
		Options: []string{"Au", "Ag", "Go", "Gd"},
		CorrectIndex: 0,
		Explanation: "Au comes from aurum, the Latin word for gold. Ag is silver, from argentum.",
	},
	{
		ID:      "q-chem-2",
		Subject: SubjectChemistry,
		Prompt:  "Which gas makes up about 96% of the atmosphere of Venus?",
		Options: []string{"Nitrogen", "Oxygen", "Methane", "Carbon dioxide"},
		CorrectIndex: 3,
		Explanation: "Venus's dense carbon dioxide atmosphere traps heat in a runaway greenhouse " +
			"effect, keeping the surface near 465 °C.",
	},
	{
		ID:      "q-chem-3",
		Subject: SubjectChemistry,
		Prompt:  "What compound gives Mars its red color?",
		Options: []string{"Copper sulfate", "Iron oxide", "Sulfur dioxide", "Silicon dioxide"},
		CorrectIndex: 1,
		Explanation: "Iron in the Martian soil reacted with oxygen over billions of years to form " +
			"iron oxide, the same compound as rust.",
	},
	{
		ID:      "q-chem-4",
		Subject: SubjectChemistry,
		Prompt:  "Which subatomic particle carries a negative charge?",
		Options: []string{"Proton", "Neutron", "Electron", "Photon"},
		CorrectIndex: 2,
		Explanation: "Electrons orbit the nucleus and carry a charge of -1; protons are positive " +
			"and neutrons are neutral.",
	},
	{
		ID:      "q-chem-5",
		Subject: SubjectChemistry,
		Prompt:  "The clouds of Venus contain droplets of which acid?",
		Options: []string{"Hydrochloric acid", "Nitric acid", "Sulfuric acid", "Carbonic acid"},
		CorrectIndex: 2,
		Explanation: "Sulfur dioxide reacts with water vapor high in the Venusian atmosphere to " +
			"form sulfuric acid droplets.",
	},
	{
		ID:      "q-phy-1",
		Subject: SubjectPhysics,
		Prompt:  "What process powers the Sun?",
		Options: []string{"Nuclear fission", "Nuclear fusion", "Chemical combustion", "Radioactive decay"},
		CorrectIndex: 1,
		Explanation: "In the Sun's core, hydrogen nuclei fuse into helium, converting mass into " +
			"energy as described by E=mc².",
	},
	{
		ID:      "q-phy-2",
		Subject: SubjectPhysics,
		Prompt:  "What causes the ocean tides on Earth?",
		Options: []string{
			"Earth's rotation alone",
			"Wind patterns",
			"The Moon's gravitational pull",
			"Changes in air pressure",
		},
		CorrectIndex: 2,
		Explanation: "The Moon's gravity pulls hardest on the near side of Earth, stretching the " +
			"oceans into bulges that sweep past as the planet rotates.",
	},
	{
		ID:      "q-phy-3",
		Subject: SubjectPhysics,
		Prompt:  "Why does Mercury orbit the Sun faster than any other planet?",
		Options: []string{
			"It is the smallest planet",
			"It is closest to the Sun, so gravity demands a higher orbital speed",
			"It has no atmosphere to slow it down",
			"Its iron core propels it",
		},
		CorrectIndex: 1,
		Explanation: "Orbital speed rises as distance to the Sun shrinks; a closer orbit needs " +
			"more speed to balance the stronger gravitational pull.",
	},
	{
		ID:      "q-phy-4",
		Subject: SubjectPhysics,
		Prompt:  "How was Neptune discovered?",
		Options: []string{
			"By accident during a comet search",
			"Predicted mathematically from irregularities in Uranus's orbit",
			"Spotted by an early space probe",
			"Seen with the naked eye in ancient times",
		},
		CorrectIndex: 1,
		Explanation: "Astronomers calculated where an unseen planet must be to explain Uranus's " +
			"orbital drift, and found Neptune within a degree of the prediction in 1846.",
	},
	{
		ID:      "q-phy-5",
		Subject: SubjectPhysics,
		Prompt:  "About how long does sunlight take to reach Earth?",
		Options: []string{"8 seconds", "8 minutes", "8 hours", "8 days"},
		CorrectIndex: 1,
		Explanation: "Light covers the 150 million kilometers from the Sun to Earth in roughly " +
			"eight minutes and twenty seconds.",
	},
}
