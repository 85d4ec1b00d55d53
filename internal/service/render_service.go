package service

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"unicode"

	"mbti-insight/internal/content"
	"mbti-insight/internal/domain"
)

// RenderService arma el documento HTML bilingue y auto-contenido del
// reporte. Tolera analysis nil: omite las secciones AI y deja el resumen
// de puntajes.
type RenderService struct {
	tmpl *template.Template
}

func NewRenderService() (*RenderService, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &RenderService{tmpl: tmpl}, nil
}

type scoreBar struct {
	Pair       string
	LeftLabel  string
	RightLabel string
	Left       int
	Right      int
	Chosen     string
}

type reportSection struct {
	Title string
	Body  string
}

type languageBlock struct {
	Label    string
	Sections []reportSection
}

type reportView struct {
	Type        string
	Name        string
	Description string
	Celebrities []string
	Bars        []scoreBar
	HasAnalysis bool
	Languages   []languageBlock
}

// titulos conocidos por idioma; claves desconocidas caen a humanizeKey.
var sectionTitles = map[string]map[string]string{
	"en": {
		"coverPage":               "Your Personality Portrait",
		"executiveSummary":        "Executive Summary",
		"detailedAnalysis":        "Detailed Analysis",
		"careerPath":              "Career Path",
		"friendshipCompatibility": "Friendship Compatibility",
		"romanticCompatibility":   "Romantic Compatibility",
		"mentalHealthInsights":    "Mental Health Insights",
		"selfImprovement":         "Self Improvement",
		"dailyLifeApplications":   "Daily Life Applications",
		"actionPlan":              "Action Plan",
	},
	"es": {
		"coverPage":               "Tu retrato de personalidad",
		"executiveSummary":        "Resumen ejecutivo",
		"detailedAnalysis":        "Análisis detallado",
		"careerPath":              "Camino profesional",
		"friendshipCompatibility": "Compatibilidad de amistad",
		"romanticCompatibility":   "Compatibilidad romántica",
		"mentalHealthInsights":    "Salud mental",
		"selfImprovement":         "Desarrollo personal",
		"dailyLifeApplications":   "Vida cotidiana",
		"actionPlan":              "Plan de acción",
	},
}

var languageLabels = map[string]string{
	"en": "English",
	"es": "Español",
}

// RenderHTML produce el documento completo para un resultado y su
// analisis (posiblemente nil o con el reporte bloqueado por premium).
func (s *RenderService) RenderHTML(result domain.Result, analysis *domain.AIAnalysis) (string, error) {
	view := reportView{
		Type:        result.MBTIType,
		Name:        result.TypeInfo.Name,
		Description: result.Description,
		Celebrities: result.Celebrities,
		Bars: []scoreBar{
			buildBar("EI", "Extroversión", "Introversión", result.NormalizedScores.E, result.NormalizedScores.I, result.Dimensions.EI),
			buildBar("SN", "Sensación", "Intuición", result.NormalizedScores.S, result.NormalizedScores.N, result.Dimensions.SN),
			buildBar("TF", "Pensamiento", "Sentimiento", result.NormalizedScores.T, result.NormalizedScores.F, result.Dimensions.TF),
			buildBar("JP", "Juicio", "Percepción", result.NormalizedScores.J, result.NormalizedScores.P, result.Dimensions.JP),
		},
	}

	if analysis != nil && len(analysis.FullReport) > 0 {
		view.HasAnalysis = true
		for _, lang := range orderedLanguages(analysis.FullReport) {
			fields := analysis.FullReport[lang]
			block := languageBlock{Label: languageLabel(lang)}
			for _, field := range orderedFields(fields) {
				block.Sections = append(block.Sections, reportSection{
					Title: sectionTitle(lang, field),
					Body:  fields[field],
				})
			}
			view.Languages = append(view.Languages, block)
		}
	}

	var sb strings.Builder
	if err := s.tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}

// buildBar arma la barra de un par; un par sin datos se muestra 50/50.
func buildBar(pair, leftLabel, rightLabel string, left, right int, chosen string) scoreBar {
	if left == 0 && right == 0 {
		left, right = 50, 50
	}
	return scoreBar{
		Pair:       pair,
		LeftLabel:  leftLabel,
		RightLabel: rightLabel,
		Left:       left,
		Right:      right,
		Chosen:     chosen,
	}
}

// orderedFields devuelve primero los campos conocidos en su orden fijo y
// despues cualquier clave extra del reporte, ordenada. El renderer no
// hardcodea la lista: itera lo que haya.
func orderedFields(fields map[string]string) []string {
	var ordered []string
	seen := map[string]bool{}
	for _, field := range content.ReportFields {
		if _, ok := fields[field]; ok {
			ordered = append(ordered, field)
			seen[field] = true
		}
	}
	var extras []string
	for field := range fields {
		if !seen[field] {
			extras = append(extras, field)
		}
	}
	sort.Strings(extras)
	return append(ordered, extras...)
}

func orderedLanguages(report domain.FullReport) []string {
	var langs []string
	if _, ok := report["en"]; ok {
		langs = append(langs, "en")
	}
	var rest []string
	for lang := range report {
		if lang != "en" {
			rest = append(rest, lang)
		}
	}
	sort.Strings(rest)
	return append(langs, rest...)
}

func sectionTitle(lang, field string) string {
	if titles, ok := sectionTitles[lang]; ok {
		if title, ok := titles[field]; ok {
			return title
		}
	}
	return humanizeKey(field)
}

func languageLabel(lang string) string {
	if label, ok := languageLabels[lang]; ok {
		return label
	}
	return strings.ToUpper(lang)
}

// humanizeKey convierte "mentalHealthInsights" en "Mental Health Insights".
func humanizeKey(key string) string {
	var words []string
	var current []rune
	for _, r := range key {
		if unicode.IsUpper(r) && len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
		current = append(current, unicode.ToLower(r))
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

const reportTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Reporte MBTI {{.Type}}</title>
<style>
body { font-family: Georgia, serif; max-width: 860px; margin: 0 auto; padding: 2rem; color: #222; }
header { text-align: center; margin-bottom: 2rem; }
h1 { margin-bottom: 0.2rem; }
.subtitle { color: #666; }
.bar { margin: 0.8rem 0; }
.bar-labels { display: flex; justify-content: space-between; font-size: 0.9rem; }
.bar-track { background: #eee; height: 14px; border-radius: 7px; overflow: hidden; }
.bar-fill { background: #4a6fa5; height: 100%; }
.section { margin: 1.6rem 0; page-break-inside: avoid; }
.section h3 { border-bottom: 1px solid #ddd; padding-bottom: 0.3rem; }
.language { margin-top: 2.4rem; }
.language h2 { background: #f5f5f5; padding: 0.4rem 0.8rem; }
.celebrities { font-style: italic; color: #555; }
.locked { color: #888; text-align: center; margin-top: 2rem; }
@media print { body { padding: 0; } }
</style>
</head>
<body>
<header>
<h1>{{.Type}}{{if .Name}}: {{.Name}}{{end}}</h1>
{{if .Description}}<p class="subtitle">{{.Description}}</p>{{end}}
{{if .Celebrities}}<p class="celebrities">{{range $i, $c := .Celebrities}}{{if $i}}, {{end}}{{$c}}{{end}}</p>{{end}}
</header>
<section>
{{range .Bars}}
<div class="bar">
<div class="bar-labels"><span>{{.LeftLabel}} {{.Left}}%</span><span>{{.RightLabel}} {{.Right}}%</span></div>
<div class="bar-track"><div class="bar-fill" style="width: {{.Left}}%"></div></div>
</div>
{{end}}
</section>
{{if .HasAnalysis}}
{{range .Languages}}
<div class="language">
<h2>{{.Label}}</h2>
{{range .Sections}}
<div class="section">
<h3>{{.Title}}</h3>
<p>{{.Body}}</p>
</div>
{{end}}
</div>
{{end}}
{{else}}
<p class="locked">El análisis completo no está disponible para esta sesión.</p>
{{end}}
</body>
</html>
`
