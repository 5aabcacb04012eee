// Package catalog holds the static lesson catalog. It is loaded once at
// process start and shared read-only across all requests.
package catalog

import "fmt"

// swagger:model QuizQuestion
type QuizQuestion struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// swagger:model Lesson
type Lesson struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Definition  string         `json:"definition"`
	ModelFile   string         `json:"modelFile"`
	Questions   []QuizQuestion `json:"questions"`
}

var lessons = []Lesson{
	{
		Title:       "Human Brain",
		Description: "Delve into the intricate structures of the human brain, including its major lobes (frontal, parietal, temporal, occipital), the cerebellum, brainstem, and the microscopic world of neurons and synapses that enable complex thought and bodily control.",
		Definition:  "The human brain, the command center of the nervous system, orchestrates thought, memory, emotion, motor skills, vision, breathing, temperature, hunger, and every process that regulates our body. It comprises billions of neurons communicating through synapses.",
		ModelFile:   "human-brain.glb",
		Questions: []QuizQuestion{
			{
				ID:            "hb1",
				QuestionText:  "Which part of the brain is primarily responsible for higher cognitive functions like thinking and language?",
				Options:       []string{"Cerebellum", "Brainstem", "Cerebrum", "Hypothalamus"},
				CorrectAnswer: "Cerebrum",
			},
			{
				ID:            "hb2",
				QuestionText:  "What are the basic signaling units of the nervous system?",
				Options:       []string{"Glial cells", "Neurons", "Axons", "Synapses"},
				CorrectAnswer: "Neurons",
			},
			{
				ID:            "hb3",
				QuestionText:  "Which lobe is mainly involved in processing visual information?",
				Options:       []string{"Frontal Lobe", "Temporal Lobe", "Parietal Lobe", "Occipital Lobe"},
				CorrectAnswer: "Occipital Lobe",
			},
		},
	},
	{
		Title:       "Lungs",
		Description: "Explore the respiratory pathway from the trachea to the bronchi and bronchioles, culminating in the alveoli where crucial oxygen and carbon dioxide exchange occurs. Understand the mechanics of breathing involving the diaphragm and intercostal muscles.",
		Definition:  "The lungs are the central organs of the respiratory system in humans and many other animals. They are located in the chest cavity and are responsible for the vital process of gas exchange, extracting oxygen from inhaled air and releasing carbon dioxide from the bloodstream into exhaled air.",
		ModelFile:   "lungs.glb",
		Questions: []QuizQuestion{
			{
				ID:            "lu1",
				QuestionText:  "What is the primary function of the lungs?",
				Options:       []string{"Pumping blood", "Digesting food", "Gas exchange (Oxygen/CO2)", "Filtering waste"},
				CorrectAnswer: "Gas exchange (Oxygen/CO2)",
			},
			{
				ID:            "lu2",
				QuestionText:  "What are the tiny air sacs in the lungs where gas exchange happens?",
				Options:       []string{"Bronchi", "Trachea", "Alveoli", "Diaphragm"},
				CorrectAnswer: "Alveoli",
			},
			{
				ID:            "lu3",
				QuestionText:  "Which large muscle below the lungs helps with breathing?",
				Options:       []string{"Pectoralis Major", "Intercostal Muscles", "Diaphragm", "Trachea"},
				CorrectAnswer: "Diaphragm",
			},
		},
	},
	{
		Title:       "Amoeba",
		Description: "Discover the fascinating world of this single-celled protist. Learn about its unique mode of locomotion and feeding using pseudopods (phagocytosis), its simple structure including the nucleus and contractile vacuole, and its role in various ecosystems.",
		Definition:  "An amoeba is a type of single-celled organism belonging to the Protozoa group, characterized by its irregular shape and ability to move and capture food using temporary projections called pseudopods. They lack cell walls and are found in diverse environments like water and soil.",
		ModelFile:   "amoeba.glb",
		Questions: []QuizQuestion{
			{
				ID:            "am1",
				QuestionText:  "How does an amoeba primarily move?",
				Options:       []string{"Flagella", "Cilia", "Pseudopods (false feet)", "Contractile vacuoles"},
				CorrectAnswer: "Pseudopods (false feet)",
			},
			{
				ID:            "am2",
				QuestionText:  "Amoeba belong to which kingdom?",
				Options:       []string{"Animalia", "Fungi", "Plantae", "Protista"},
				CorrectAnswer: "Protista",
			},
			{
				ID:            "am3",
				QuestionText:  "What is the process by which an amoeba engulfs food particles?",
				Options:       []string{"Photosynthesis", "Phagocytosis", "Osmosis", "Diffusion"},
				CorrectAnswer: "Phagocytosis",
			},
		},
	},
}

// Lessons returns the ordered lesson catalog.
func Lessons() []Lesson {
	return lessons
}

// Find returns the lesson with the given title.
func Find(title string) (Lesson, bool) {
	for _, l := range lessons {
		if l.Title == title {
			return l, true
		}
	}
	return Lesson{}, false
}

// Next returns the lesson after the given one, if any.
func Next(title string) (Lesson, bool) {
	for i, l := range lessons {
		if l.Title == title && i+1 < len(lessons) {
			return lessons[i+1], true
		}
	}
	return Lesson{}, false
}

func Titles() []string {
	titles := make([]string, 0, len(lessons))
	for _, l := range lessons {
		titles = append(titles, l.Title)
	}
	return titles
}

// HasModelFile reports whether file is the 3D model of any lesson. Used to
// reject arbitrary file names on the asset route.
func HasModelFile(file string) bool {
	for _, l := range lessons {
		if l.ModelFile == file {
			return true
		}
	}
	return false
}

// Validate checks the catalog invariants: unique lesson titles, unique
// question ids within a lesson, and exactly one correct answer per question
// that is a member of its options.
func Validate() error {
	titles := map[string]bool{}
	for _, l := range lessons {
		if l.Title == "" {
			return fmt.Errorf("lesson with empty title")
		}
		if titles[l.Title] {
			return fmt.Errorf("duplicate lesson title %q", l.Title)
		}
		titles[l.Title] = true

		ids := map[string]bool{}
		for _, q := range l.Questions {
			if ids[q.ID] {
				return fmt.Errorf("lesson %q: duplicate question id %q", l.Title, q.ID)
			}
			ids[q.ID] = true

			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("lesson %q question %q: correct answer %q is not an option", l.Title, q.ID, q.CorrectAnswer)
			}
		}
	}
	return nil
}
