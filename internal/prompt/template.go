// Package prompt renders the generation brief sent to the image model.
// It is pure string substitution into one fixed master template: the
// per-style guidance lives as prose blocks selected by the substituted
// value, and the model, not this package, interprets style semantics.
package prompt

import "strings"

const (
	DefaultAspectRatio = "16:9"
	DefaultStyleFamily = "minimal_abstrait"
	DefaultTypography  = "sans_serif_modern"
)

// Params are the structured inputs of one quote card. Citation and Author
// are required by callers; this package applies documented defaults for
// the rest and never raises an error itself.
type Params struct {
	Citation    string `json:"citation"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Source      string `json:"source"`
	AspectRatio string `json:"aspectRatio"`
	StyleFamily string `json:"styleFamily"`
	Typography  string `json:"typography"`
	Highlight   string `json:"highlight"`
	Scene       string `json:"scene"`

	// Legacy free-text style sliders kept from the first generator UI.
	Palette          string `json:"palette"`
	Background       string `json:"background"`
	Abstract         string `json:"abstract"`
	Accent           string `json:"accent"`
	DecorativeQuotes bool   `json:"decorativeQuotes"`
}

const masterTemplate = `Crée une carte-citation visuelle au format {{RATIO}}.

CITATION (à reproduire mot pour mot, sans la reformuler, sans la traduire, sans la tronquer) :
« {{CITATION}} »
{{BLOC_SOURCE}}
STYLE VISUEL :
{{BLOC_STYLE}}

TYPOGRAPHIE :
{{BLOC_TYPO}}
{{BLOC_OPTIONS}}
CONSIGNES :
- La citation est le sujet principal de l'image, parfaitement lisible.
- Aucun texte supplémentaire, aucun filigrane, aucune signature.
- Composition équilibrée, marges généreuses autour du texte.
`

var styleBlocks = map[string]string{
	"minimal_abstrait": "Fond épuré aux formes abstraites douces, dégradés subtils, " +
		"beaucoup d'espace négatif. Deux ou trois couleurs sobres au maximum, " +
		"ambiance contemplative et moderne.",
	"papier_ancien": "Texture de papier vieilli, bords légèrement irréguliers, " +
		"teintes sépia et crème, impression d'un manuscrit retrouvé. " +
		"Discrètes taches d'encre et fibres visibles.",
	"nature_zen": "Paysage naturel minimaliste : brume, pierres, branche de pin ou " +
		"plan d'eau calme. Lumière douce de fin de journée, palette apaisée, " +
		"esprit d'estampe contemplative.",
	"encre_chine": "Lavis d'encre de Chine sur fond clair, traits spontanés, " +
		"contraste net entre noir profond et blanc du papier, " +
		"une seule touche de couleur au plus.",
	"geometrique": "Composition géométrique franche : aplats, lignes nettes, " +
		"formes simples qui encadrent la citation. Palette limitée et " +
		"contrastée, esprit affiche moderniste.",
}

var typoBlocks = map[string]string{
	"sans_serif_modern": "Sans-serif contemporaine, graisse moyenne, interlettrage " +
		"aéré. Hiérarchie nette entre la citation et la ligne d'attribution.",
	"serif_classique": "Serif classique aux empattements fins, élégante et " +
		"littéraire, italique réservé à l'attribution.",
	"manuscrite": "Écriture manuscrite fluide et lisible, trait naturel, " +
		"l'attribution dans une graisse plus discrète.",
}

// Render builds the brief. It is deterministic: identical Params yield a
// byte-identical string. The citation is inserted verbatim exactly once.
func Render(p Params) string {
	ratio := p.AspectRatio
	if ratio == "" {
		ratio = DefaultAspectRatio
	}

	style := p.StyleFamily
	if _, ok := styleBlocks[style]; !ok {
		style = DefaultStyleFamily
	}

	typo := p.Typography
	if _, ok := typoBlocks[typo]; !ok {
		typo = DefaultTypography
	}

	// Attribution lines are omitted entirely when absent, never rendered
	// as empty placeholders.
	var source strings.Builder
	if p.Title != "" {
		source.WriteString("Titre : " + p.Title + "\n")
	}
	if p.Author != "" {
		source.WriteString("Auteur : " + p.Author + "\n")
	}
	if p.Source != "" {
		source.WriteString("Source : " + p.Source + "\n")
	}

	var options strings.Builder
	if p.Highlight != "" {
		options.WriteString("- Mettre en valeur le passage : « " + p.Highlight + " »\n")
	}
	if p.Scene != "" {
		options.WriteString("- Scène d'arrière-plan souhaitée : " + p.Scene + "\n")
	}
	if p.Palette != "" {
		options.WriteString("- Palette : " + p.Palette + "\n")
	}
	if p.Background != "" {
		options.WriteString("- Fond : " + p.Background + "\n")
	}
	if p.Abstract != "" {
		options.WriteString("- Degré d'abstraction : " + p.Abstract + "\n")
	}
	if p.Accent != "" {
		options.WriteString("- Accent graphique : " + p.Accent + "\n")
	}
	if p.DecorativeQuotes {
		options.WriteString("- Encadrer la citation de guillemets décoratifs.\n")
	}

	optionsBlock := ""
	if options.Len() > 0 {
		optionsBlock = "\nOPTIONS :\n" + options.String()
	}

	replacer := strings.NewReplacer(
		"{{RATIO}}", ratio,
		"{{CITATION}}", p.Citation,
		"{{BLOC_SOURCE}}", source.String(),
		"{{BLOC_STYLE}}", styleBlocks[style],
		"{{BLOC_TYPO}}", typoBlocks[typo],
		"{{BLOC_OPTIONS}}", optionsBlock,
	)

	return replacer.Replace(masterTemplate)
}
