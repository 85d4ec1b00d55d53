package content

// Corpus editorial por (idioma, tipo, campo). La cobertura es parcial a
// proposito: donde no hay texto curado, el reporte AI pasa sin merge.
var predefined = map[string]map[string]map[string]string{
	"en": {
		"INTJ": {
			"executiveSummary": "Architects pair a long strategic horizon with a ruthless filter for inefficiency; they are happiest when redesigning a system nobody else thought to question.",
			"careerPath":       "INTJs thrive where autonomy meets complexity: systems architecture, research strategy, long-range planning roles.",
		},
		"INTP": {
			"executiveSummary": "Logicians are driven by the itch of an unsolved problem; precision of thought matters more to them than social convention or deadlines.",
		},
		"ENTJ": {
			"executiveSummary": "Commanders convert ambition into structure; they naturally take the wheel and measure everything, including themselves, against results.",
		},
		"ENTP": {
			"executiveSummary": "Innovators treat every assumption as negotiable; their energy comes from debate, reinvention and the next interesting problem.",
		},
		"INFJ": {
			"executiveSummary": "Advocates combine quiet conviction with unusual insight into people; they work patiently toward a future only they can already see.",
		},
		"INFP": {
			"executiveSummary": "Mediators navigate by an internal compass of values; beneath a calm surface runs an intense, imaginative inner life.",
		},
		"ENFJ": {
			"executiveSummary": "Protagonists read a room instantly and lift it; their gift and their risk is carrying everyone else's growth as a personal duty.",
		},
		"ENFP": {
			"executiveSummary": "Campaigners see sparks of possibility everywhere; their challenge is not vision but choosing which fire to actually tend.",
		},
		"ISTJ": {
			"executiveSummary": "Logisticians are the quiet infrastructure of every team: methodical, factual, and incapable of leaving a promise unkept.",
		},
		"ISFJ": {
			"executiveSummary": "Defenders protect people through details: the remembered birthday, the checked lock, the favor done before it was asked.",
		},
		"ESTJ": {
			"executiveSummary": "Executives run on order and follow-through; they make the trains run on time and expect everyone aboard to have a ticket.",
		},
		"ESFJ": {
			"executiveSummary": "Consuls hold communities together; they notice who is missing, who is struggling, and what the occasion requires.",
		},
		"ISTP": {
			"executiveSummary": "Virtuosos think with their hands; they stay cool in a crisis and bored in a meeting.",
		},
		"ISFP": {
			"executiveSummary": "Adventurers live in the concrete present with an artist's eye; they resist cages, including comfortable ones.",
		},
		"ESTP": {
			"executiveSummary": "Entrepreneurs act first and iterate; risk sharpens them where it paralyzes others.",
		},
		"ESFP": {
			"executiveSummary": "Entertainers turn ordinary moments into occasions; their warmth is improvised but never insincere.",
		},
	},
	"es": {
		"INTJ": {
			"executiveSummary": "El Arquitecto combina un horizonte estratégico largo con un filtro implacable para la ineficiencia; es más feliz rediseñando el sistema que nadie pensó en cuestionar.",
			"careerPath":       "Los INTJ prosperan donde la autonomía se cruza con la complejidad: arquitectura de sistemas, estrategia de investigación, planificación de largo plazo.",
		},
		"INTP": {
			"executiveSummary": "Al Lógico lo mueve la picazón de un problema sin resolver; la precisión del pensamiento le importa más que la convención social o los plazos.",
		},
		"ENTJ": {
			"executiveSummary": "El Comandante convierte ambición en estructura; toma el volante con naturalidad y mide todo, incluido él mismo, contra resultados.",
		},
		"ENTP": {
			"executiveSummary": "El Innovador trata cada supuesto como negociable; su energía viene del debate, la reinvención y el próximo problema interesante.",
		},
		"INFJ": {
			"executiveSummary": "El Abogado combina convicción silenciosa con una intuición inusual sobre las personas; trabaja con paciencia hacia un futuro que solo él ya puede ver.",
		},
		"INFP": {
			"executiveSummary": "El Mediador navega con una brújula interna de valores; bajo una superficie calma corre una vida interior intensa e imaginativa.",
		},
		"ENFJ": {
			"executiveSummary": "El Protagonista lee una sala al instante y la eleva; su don y su riesgo es cargar el crecimiento de los demás como deber propio.",
		},
		"ENFP": {
			"executiveSummary": "El Activista ve chispas de posibilidad en todas partes; su desafío no es la visión sino elegir qué fuego atender.",
		},
		"ISTJ": {
			"executiveSummary": "El Logista es la infraestructura silenciosa de todo equipo: metódico, factual e incapaz de dejar una promesa sin cumplir.",
		},
		"ISFJ": {
			"executiveSummary": "El Defensor protege a través de los detalles: el cumpleaños recordado, la cerradura revisada, el favor hecho antes de que lo pidan.",
		},
		"ESTJ": {
			"executiveSummary": "El Ejecutivo funciona a orden y cumplimiento; hace que los trenes salgan a horario y espera que todos a bordo tengan su boleto.",
		},
		"ESFJ": {
			"executiveSummary": "El Cónsul mantiene unidas a las comunidades; nota quién falta, quién la está pasando mal y qué pide la ocasión.",
		},
		"ISTP": {
			"executiveSummary": "El Virtuoso piensa con las manos; mantiene la calma en una crisis y el aburrimiento en una reunión.",
		},
		"ISFP": {
			"executiveSummary": "El Aventurero vive el presente concreto con ojo de artista; resiste las jaulas, incluidas las cómodas.",
		},
		"ESTP": {
			"executiveSummary": "El Emprendedor actúa primero e itera; el riesgo lo afila donde a otros los paraliza.",
		},
		"ESFP": {
			"executiveSummary": "El Animador convierte momentos comunes en ocasiones; su calidez es improvisada pero nunca falsa.",
		},
	},
}
