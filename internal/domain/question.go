package domain

// Categorias de dimension MBTI tal como vienen en el catalogo.
const (
	CategoryEI = "EI"
	CategorySN = "SN"
	CategoryTF = "TF"
	CategoryJP = "JP"
)

const (
	DirectionPositive = "positive"
	DirectionNegative = "negative"
)

// Question es una entrada inmutable del catalogo de preguntas.
type Question struct {
	QuestionID int              `json:"question_id"`
	Category   string           `json:"category"`
	Direction  string           `json:"direction"`
	LeftType   string           `json:"left_type"`
	RightType  string           `json:"right_type"`
	Text       string           `json:"text"`
	Options    []QuestionOption `json:"options,omitempty"`
	SectionID  int              `json:"section_id"`
}

type QuestionOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Section agrupa preguntas dentro del catalogo.
type Section struct {
	SectionID int        `json:"section_id"`
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle,omitempty"`
	Questions []Question `json:"questions"`
}

// QuestionCatalog es el documento completo cargado desde el archivo estatico.
type QuestionCatalog struct {
	Scale    int       `json:"scale"`
	Sections []Section `json:"sections"`
}
