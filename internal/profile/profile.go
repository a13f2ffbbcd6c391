// Package profile holds the biographical content shown on the dashboard and
// loads overrides for it from YAML.
package profile

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/pakomoretlwe/profiler/internal/emissions"
)

var ErrInvalid = errors.New("invalid profile")

type Skill struct {
	Name        string `yaml:"name"`
	Proficiency int    `yaml:"proficiency"`
}

type Role struct {
	Title       string `yaml:"title"`
	Institution string `yaml:"institution"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Image struct {
	URL     string `yaml:"url"`
	Caption string `yaml:"caption"`
}

type Project struct {
	Title     string `yaml:"title"`
	Objective string `yaml:"objective"`
	Insight   string `yaml:"insight"`
}

// Profile is everything the dashboard says about its owner.
type Profile struct {
	Name           string                 `yaml:"name"`
	Academic       Role                   `yaml:"academic"`
	Professional   Role                   `yaml:"professional"`
	Summary        string                 `yaml:"summary"`
	Image          Image                  `yaml:"image"`
	TechnicalSkill []Skill                `yaml:"technical_skills"`
	BusinessSkill  []Skill                `yaml:"business_skills"`
	Project        Project                `yaml:"project"`
	Models         []emissions.ModelScore `yaml:"models"`
	Email          string                 `yaml:"email"`
	Links          []Link                 `yaml:"links"`
}

// Default returns the built-in profile.
func Default() Profile {
	return Profile{
		Name: "Pako Moretlwe",
		Academic: Role{
			Title:       "Honours Student in Electrical and Information Engineering",
			Institution: "University of the Witwatersrand, Johannesburg",
		},
		Professional: Role{
			Title:       "Business Analyst Associate Specialist",
			Institution: "Discovery Limited Pty(Ltd)",
		},
		Summary: Summary,
		Image: Image{
			URL:     "https://www.wits.ac.za/media/wits-university/news-and-events/images/news/2023-sept-dec/ARM%20Building%20600x300px.jpeg",
			Caption: "Wits Engineering, ARM building",
		},
		TechnicalSkill: []Skill{
			{Name: "Python (Pandas, Streamlit)", Proficiency: 90},
			{Name: "Machine Learning (Scikit-learn, TensorFlow)", Proficiency: 85},
			{Name: "Control Systems", Proficiency: 80},
			{Name: "Data Analysis", Proficiency: 95},
			{Name: "Industrial Automation", Proficiency: 75},
		},
		BusinessSkill: []Skill{
			{Name: "Business Analysis", Proficiency: 85},
			{Name: "Requirements Elicitation", Proficiency: 90},
			{Name: "Stakeholder Management", Proficiency: 85},
			{Name: "Process Optimization", Proficiency: 80},
			{Name: "Tech Infrastructure Strategy", Proficiency: 75},
		},
		Project: Project{
			Title:     "Comparative Study of AI/ML Models for Predicting Gas Emissions in Cement Kilns",
			Objective: ProjectObjective,
			Insight:   ProjectInsight,
		},
		Models: emissions.DefaultModels(),
		Email:  "1036161@students.wits.ac.za",
		Links: []Link{
			{Label: "LinkedIn Profile", URL: "https://www.linkedin.com/"},
			{Label: "GitHub Profile", URL: "https://github.com/"},
		},
	}
}

// Validate checks the profile can be rendered.
func (p Profile) Validate() error {
	if p.Name == "" {
		return errors.Wrap(ErrInvalid, "name is required")
	}
	for _, group := range [][]Skill{p.TechnicalSkill, p.BusinessSkill} {
		for _, s := range group {
			if s.Proficiency < 0 || s.Proficiency > 100 {
				return errors.Wrapf(ErrInvalid, "skill %q: proficiency %d outside 0..100", s.Name, s.Proficiency)
			}
		}
	}
	return nil
}

// Load reads a YAML profile from path. Fields the file leaves out keep their
// default values.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "reading profile %q", path)
	}
	return Parse(data)
}

// Parse decodes a YAML profile on top of the defaults.
func Parse(data []byte) (Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, errors.Wrap(err, "parsing profile")
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
