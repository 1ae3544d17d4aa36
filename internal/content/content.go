// Package content holds the portfolio's copy: hero, about, projects,
// contact details and footer text.
//
// A Site is built once (Default or Load) and treated as read-only for the
// rest of the program. Renderers receive it by value; Clone hands out
// copies of the slices so no caller can mutate another caller's view.
package content

// Site is the complete content model for the page.
type Site struct {
	Name      string    `koanf:"name" yaml:"name"`
	Hero      Hero      `koanf:"hero" yaml:"hero"`
	About     About     `koanf:"about" yaml:"about"`
	Projects  []Project `koanf:"projects" yaml:"projects"`
	Contact   Contact   `koanf:"contact" yaml:"contact"`
	Copyright string    `koanf:"copyright" yaml:"copyright"`
}

// Hero is the banner at the top of the page.
type Hero struct {
	Greeting string `koanf:"greeting" yaml:"greeting"`
	Subtext  string `koanf:"subtext" yaml:"subtext"`
	CTA      string `koanf:"cta" yaml:"cta"`
}

// About is the about-me section. Skills render as badges in order.
type About struct {
	Heading string   `koanf:"heading" yaml:"heading"`
	Body    string   `koanf:"body" yaml:"body"`
	Skills  []string `koanf:"skills" yaml:"skills"`
}

// Project is one gallery card. Link and Tags are optional.
type Project struct {
	Title       string   `koanf:"title" yaml:"title"`
	Description string   `koanf:"desc" yaml:"desc"`
	Link        string   `koanf:"link" yaml:"link,omitempty"`
	Tags        []string `koanf:"tags" yaml:"tags,omitempty"`
}

// HasLink reports whether the card should render an outbound link.
func (p Project) HasLink() bool { return p.Link != "" }

// Contact holds the contact section copy.
type Contact struct {
	Heading string `koanf:"heading" yaml:"heading"`
	Subtext string `koanf:"subtext" yaml:"subtext"`
	Email   string `koanf:"email" yaml:"email"`
}

// Clone returns a deep copy of s.
func (s Site) Clone() Site {
	out := s
	out.About.Skills = append([]string(nil), s.About.Skills...)
	out.Projects = make([]Project, len(s.Projects))
	for i, p := range s.Projects {
		p.Tags = append([]string(nil), p.Tags...)
		out.Projects[i] = p
	}
	if s.Projects == nil {
		out.Projects = nil
	}
	return out
}

// Default returns the built-in page content.
func Default() Site {
	return Site{
		Name: "MyPortfolio",
		Hero: Hero{
			Greeting: "Hi, I’m John!",
			Subtext:  "I’m a Web Developer passionate about design & code.",
			CTA:      "View My Work",
		},
		About: About{
			Heading: "About Me",
			Body: "I'm an IT student who loves designing clean, friendly user interfaces and learning how " +
				"to bring them to life with code. I enjoy working with HTML, CSS, and am growing my skills " +
				"in JavaScript and React. When I'm not coding, you'll probably catch me listening to music " +
				"or experimenting with new design ideas.",
			Skills: []string{"HTML", "CSS", "Tailwind", "React", "Figma", "Git"},
		},
		Projects: []Project{
			{
				Title:       "Portfolio Website",
				Description: "Personal website built with React & Tailwind.",
				Link:        "#",
				Tags:        []string{"React", "Tailwind"},
			},
			{
				Title:       "Todo App",
				Description: "Simple productivity app using React hooks.",
				Link:        "#",
				Tags:        []string{"React", "Hooks"},
			},
			{
				Title:       "Binhi UI Mockups",
				Description: "Early-stage UI concepts for a community platform.",
				Link:        "#",
				Tags:        []string{"UI", "Design"},
			},
		},
		Contact: Contact{
			Heading: "Contact",
			Subtext: "Let’s work together or just say hi!",
			Email:   "johnhenrix@example.com",
		},
		Copyright: "2025 John Henrix Gillo. All rights reserved.",
	}
}
