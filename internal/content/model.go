// Package content defines the authored content tree of the site and loads
// it from YAML.
package content

import "github.com/Leonard-ssj/portfolio/internal/i18n"

type Text = i18n.Text

// Site is the whole content tree. It is immutable once loaded.
type Site struct {
	Profile      Profile         `yaml:"profile"`
	Nav          Nav             `yaml:"nav"`
	Hero         Hero            `yaml:"hero"`
	About        About           `yaml:"about"`
	Skills       Skills          `yaml:"skills"`
	Experience   Experience      `yaml:"experience"`
	Projects     Projects        `yaml:"projects"`
	Docs         Docs            `yaml:"docs"`
	NotesPreview NotesPreview    `yaml:"notesPreview"`
	Contact      Contact         `yaml:"contact"`
	Footer       Footer          `yaml:"footer"`
	Resume       Resume          `yaml:"resume"`
	Notes        Notes           `yaml:"notes"`
	Labels       map[string]Text `yaml:"labels"`
}

type Profile struct {
	Name      string `yaml:"name"`
	Initials  string `yaml:"initials"`
	Role      Text   `yaml:"role"`
	Location  string `yaml:"location"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	GitHub    string `yaml:"github"`
	LinkedIn  string `yaml:"linkedin"`
	Instagram string `yaml:"instagram"`
	TikTok    string `yaml:"tiktok"`
	Avatar    string `yaml:"avatar"`
	CV        string `yaml:"cv"`
	CVATS     string `yaml:"cvAts"`
}

// Nav pairs one label per language with a shared list of section anchors.
type Nav struct {
	Labels  i18n.Localized[[]string] `yaml:"labels"`
	Anchors []string                 `yaml:"anchors"`
}

type Hero struct {
	Subtitle Text                     `yaml:"subtitle"`
	Chips    i18n.Localized[[]string] `yaml:"chips"`
	Roles    i18n.Localized[[]string] `yaml:"roles"`
	Buttons  struct {
		DownloadCV  Text `yaml:"downloadCv"`
		ViewATSDocx Text `yaml:"viewAtsDocx"`
		ViewATSText Text `yaml:"viewAtsText"`
	} `yaml:"buttons"`
}

type Card struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type About struct {
	Title          Text                   `yaml:"title"`
	Text           Text                   `yaml:"text"`
	FrameworkTitle Text                   `yaml:"frameworkTitle"`
	Cards          i18n.Localized[[]Card] `yaml:"cards"`
}

type SkillCategory struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type Skills struct {
	Title      Text                            `yaml:"title"`
	Categories i18n.Localized[[]SkillCategory] `yaml:"categories"`
}

type Job struct {
	Company  string   `yaml:"company"`
	Role     string   `yaml:"role"`
	Location string   `yaml:"location"`
	Period   string   `yaml:"period"`
	Current  bool     `yaml:"current"`
	Bullets  []string `yaml:"bullets"`
}

type Experience struct {
	Title Text                  `yaml:"title"`
	Items i18n.Localized[[]Job] `yaml:"items"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Project struct {
	Title   string   `yaml:"title"`
	Type    string   `yaml:"type"`
	Status  string   `yaml:"status"`
	Stack   []string `yaml:"stack"`
	Bullets []string `yaml:"bullets"`
	Links   []Link   `yaml:"links"`
}

type Projects struct {
	Title Text                      `yaml:"title"`
	Items i18n.Localized[[]Project] `yaml:"items"`
}

// DocType is the kind of a downloadable document.
type DocType string

const (
	DocPDF  DocType = "PDF"
	DocPNG  DocType = "PNG"
	DocJSON DocType = "JSON"
)

type Doc struct {
	Title string  `yaml:"title"`
	Type  DocType `yaml:"type"`
	Href  string  `yaml:"href"`
}

type Docs struct {
	Title    Text                  `yaml:"title"`
	Subtitle Text                  `yaml:"subtitle"`
	Items    i18n.Localized[[]Doc] `yaml:"items"`
}

type NotesPreview struct {
	Title      Text     `yaml:"title"`
	Subtitle   Text     `yaml:"subtitle"`
	Highlights []string `yaml:"highlights"`
	CTA        Text     `yaml:"cta"`
}

type ContactForm struct {
	Name               Text `yaml:"name"`
	Email              Text `yaml:"email"`
	Message            Text `yaml:"message"`
	Send               Text `yaml:"send"`
	CopyEmail          Text `yaml:"copyEmail"`
	Copied             Text `yaml:"copied"`
	NamePlaceholder    Text `yaml:"namePlaceholder"`
	EmailPlaceholder   Text `yaml:"emailPlaceholder"`
	MessagePlaceholder Text `yaml:"messagePlaceholder"`
}

type Contact struct {
	Title        Text        `yaml:"title"`
	Form         ContactForm `yaml:"form"`
	MapTitle     Text        `yaml:"mapTitle"`
	WhatsAppText Text        `yaml:"whatsappText"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
	BackToTop Text   `yaml:"backToTop"`
}

type Resume struct {
	Title        Text   `yaml:"title"`
	DownloadPDF  Text   `yaml:"downloadPdf"`
	DownloadDocx Text   `yaml:"downloadDocx"`
	ATSNote      Text   `yaml:"atsNote"`
	ATSTitle     Text   `yaml:"atsTitle"`
	ATSContent   string `yaml:"atsContent"`
}

// Note is a short article with a markdown-subset body.
type Note struct {
	Slug     string `yaml:"slug"`
	Title    Text   `yaml:"title"`
	Summary  Text   `yaml:"summary"`
	Date     string `yaml:"date"`
	Category Text   `yaml:"category"`
	Content  Text   `yaml:"content"`
}

type Notes struct {
	Title             Text   `yaml:"title"`
	Subtitle          Text   `yaml:"subtitle"`
	SearchPlaceholder Text   `yaml:"searchPlaceholder"`
	Posts             []Note `yaml:"posts"`
}

// Label returns the UI string id in lang, or the id itself when unknown.
func (s *Site) Label(l i18n.Localizer, id string) string {
	t, ok := s.Labels[id]
	if !ok {
		return id
	}
	return i18n.Pick(l, t)
}
