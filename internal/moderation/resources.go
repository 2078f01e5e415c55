package moderation

// Resource is a single helpline or support contact.
type Resource struct {
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Available string `json:"available"`
}

// ResourceBundle groups the contacts shown alongside a crisis response.
type ResourceBundle struct {
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Resources []Resource `json:"resources"`
}

var emergencyResources = ResourceBundle{
	Title:   "Immediate Crisis Support",
	Message: "If you're in immediate danger, please contact emergency services or go to your nearest emergency room.",
	Resources: []Resource{
		{
			Name:      "National Suicide Prevention Lifeline (US)",
			Contact:   "988 or 1-800-273-8255",
			Available: "24/7",
		},
		{
			Name:      "Crisis Text Line",
			Contact:   "Text HOME to 741741",
			Available: "24/7",
		},
		{
			Name:      "International Association for Suicide Prevention",
			Contact:   "https://www.iasp.info/resources/Crisis_Centres/",
			Available: "Global resources",
		},
	},
}

var supportResources = ResourceBundle{
	Title:   "Mental Health Support",
	Message: "You're not alone. Here are some resources that can help:",
	Resources: []Resource{
		{
			Name:      "National Alliance on Mental Illness (NAMI)",
			Contact:   "1-800-950-6264",
			Available: "Mon-Fri 10AM-6PM ET",
		},
		{
			Name:      "SAMHSA National Helpline",
			Contact:   "1-800-662-4357",
			Available: "24/7",
		},
		{
			Name:      "Crisis Text Line",
			Contact:   "Text HOME to 741741",
			Available: "24/7",
		},
	},
}

// EmergencyResources returns the acute-crisis contact bundle.
func EmergencyResources() ResourceBundle { return emergencyResources }

// SupportResources returns the general support contact bundle.
func SupportResources() ResourceBundle { return supportResources }
