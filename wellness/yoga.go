package wellness

// Pose is an entry of the yoga catalogue.
type Pose struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Sanskrit    string   `json:"sanskrit"`
	Dosha       Dosha    `json:"dosha"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Image       string   `json:"image"`
}

// Poses is the fixed catalogue, one pose per dosha.
var Poses = []Pose{
	{
		ID:          "tree",
		Name:        "Tree Pose",
		Sanskrit:    "Vrikshasana",
		Dosha:       Vata,
		Description: "Stand on one leg with the other foot on the inner thigh, palms joined overhead.",
		Benefits:    []string{"Improves balance", "Calms a scattered mind", "Strengthens legs and ankles"},
		Image:       "https://images.unsplash.com/photo-1575052814086-f385e2e2ad1b?w=800",
	},
	{
		ID:          "camel",
		Name:        "Camel Pose",
		Sanskrit:    "Ustrasana",
		Dosha:       Pitta,
		Description: "Kneel and arch back to hold the heels, opening the chest towards the sky.",
		Benefits:    []string{"Opens the chest and shoulders", "Stimulates digestion", "Releases held emotion"},
		Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=800",
	},
	{
		ID:          "warrior-2",
		Name:        "Warrior II",
		Sanskrit:    "Virabhadrasana II",
		Dosha:       Kapha,
		Description: "Wide stance, front knee bent, arms extended parallel to the floor, gaze over the front hand.",
		Benefits:    []string{"Builds stamina", "Energizes the whole body", "Strengthens legs and core"},
		Image:       "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800",
	},
}

// PoseByID looks up a pose in the catalogue.
func PoseByID(id string) (Pose, bool) {
	for _, p := range Poses {
		if p.ID == id {
			return p, true
		}
	}
	return Pose{}, false
}
