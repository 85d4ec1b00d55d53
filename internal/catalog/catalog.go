package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"mbti-insight/internal/domain"
)

// Catalog es el catalogo de preguntas aplanado. Se carga una vez al
// arranque; el motor de puntaje y el agregador dependen solo de la lista
// plana y del lookup por id.
type Catalog struct {
	scale     int
	sections  []domain.Section
	questions []domain.Question
	byID      map[int]domain.Question
}

// Load lee el documento anidado desde un archivo JSON estatico.
// Un catalogo ilegible es un error de configuracion, no de validacion.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCatalogUnavailable, path, err)
	}

	var doc domain.QuestionCatalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrCatalogUnavailable, path, err)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("%w: %s has no sections", domain.ErrCatalogUnavailable, path)
	}

	return FromDocument(doc), nil
}

// FromDocument aplana un documento ya parseado. Util en tests.
func FromDocument(doc domain.QuestionCatalog) *Catalog {
	c := &Catalog{
		scale:    doc.Scale,
		sections: doc.Sections,
		byID:     make(map[int]domain.Question),
	}
	for _, section := range doc.Sections {
		for _, q := range section.Questions {
			if q.SectionID == 0 {
				q.SectionID = section.SectionID
			}
			c.questions = append(c.questions, q)
			c.byID[q.QuestionID] = q
		}
	}
	return c
}

// Questions devuelve la lista plana en el orden del catalogo.
func (c *Catalog) Questions() []domain.Question {
	return c.questions
}

// ByID busca una pregunta por id. El segundo valor indica si existe.
func (c *Catalog) ByID(id int) (domain.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Total es la cantidad de preguntas del catalogo.
func (c *Catalog) Total() int {
	return len(c.questions)
}

func (c *Catalog) Scale() int {
	return c.scale
}

func (c *Catalog) Sections() []domain.Section {
	return c.sections
}
