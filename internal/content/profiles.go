package content

// Tablas estaticas por tipo. Mismo espiritu que un seed: texto curado,
// sin logica. Los 16 tipos estan presentes; el corpus "predefined" cubre
// los campos donde hay texto editorial y deja el resto al pipeline AI.

var profiles = map[string]TypeProfile{
	"INTJ": {Code: "INTJ", Name: "El Arquitecto", Description: "Estratégico e independiente; convierte ideas complejas en planes de largo plazo.", Celebrities: []string{"Elon Musk", "Michelle Obama", "Friedrich Nietzsche"}},
	"INTP": {Code: "INTP", Name: "El Lógico", Description: "Analítico y curioso; vive para desarmar problemas y entender cómo funcionan las cosas.", Celebrities: []string{"Albert Einstein", "Bill Gates", "Marie Curie"}},
	"ENTJ": {Code: "ENTJ", Name: "El Comandante", Description: "Líder natural; organiza personas y recursos hacia objetivos ambiciosos.", Celebrities: []string{"Steve Jobs", "Margaret Thatcher", "Gordon Ramsay"}},
	"ENTP": {Code: "ENTP", Name: "El Innovador", Description: "Debatidor ágil; disfruta desafiar supuestos y explorar posibilidades nuevas.", Celebrities: []string{"Thomas Edison", "Celine Dion", "Tom Hanks"}},
	"INFJ": {Code: "INFJ", Name: "El Abogado", Description: "Idealista reservado; busca sentido profundo y ayuda a otros con convicción silenciosa.", Celebrities: []string{"Martin Luther King Jr.", "Nelson Mandela", "Lady Gaga"}},
	"INFP": {Code: "INFP", Name: "El Mediador", Description: "Soñador empático; guiado por valores internos y una imaginación rica.", Celebrities: []string{"William Shakespeare", "J.R.R. Tolkien", "Alicia Keys"}},
	"ENFJ": {Code: "ENFJ", Name: "El Protagonista", Description: "Carismático y altruista; inspira y coordina a los demás con facilidad.", Celebrities: []string{"Barack Obama", "Oprah Winfrey", "Maya Angelou"}},
	"ENFP": {Code: "ENFP", Name: "El Activista", Description: "Entusiasta creativo; ve la vida como una red de posibilidades y conexiones.", Celebrities: []string{"Robin Williams", "Robert Downey Jr.", "Ellen DeGeneres"}},
	"ISTJ": {Code: "ISTJ", Name: "El Logista", Description: "Práctico y confiable; cumple lo que promete con método y precisión.", Celebrities: []string{"George Washington", "Angela Merkel", "Natalie Portman"}},
	"ISFJ": {Code: "ISFJ", Name: "El Defensor", Description: "Protector dedicado; cuida los detalles y a las personas con lealtad discreta.", Celebrities: []string{"Beyoncé", "Rosa Parks", "Kate Middleton"}},
	"ESTJ": {Code: "ESTJ", Name: "El Ejecutivo", Description: "Organizador nato; administra proyectos y personas con reglas claras.", Celebrities: []string{"Henry Ford", "Sonia Sotomayor", "John D. Rockefeller"}},
	"ESFJ": {Code: "ESFJ", Name: "El Cónsul", Description: "Sociable y atento; mantiene unida a su comunidad y anticipa necesidades ajenas.", Celebrities: []string{"Taylor Swift", "Bill Clinton", "Jennifer Garner"}},
	"ISTP": {Code: "ISTP", Name: "El Virtuoso", Description: "Experimentador práctico; domina herramientas y resuelve problemas con calma.", Celebrities: []string{"Clint Eastwood", "Bear Grylls", "Michael Jordan"}},
	"ISFP": {Code: "ISFP", Name: "El Aventurero", Description: "Artista flexible; explora el mundo con sensibilidad estética y apertura.", Celebrities: []string{"Bob Dylan", "Frida Kahlo", "Lana Del Rey"}},
	"ESTP": {Code: "ESTP", Name: "El Emprendedor", Description: "Enérgico y perceptivo; prospera en la acción y el riesgo calculado.", Celebrities: []string{"Ernest Hemingway", "Madonna", "Eddie Murphy"}},
	"ESFP": {Code: "ESFP", Name: "El Animador", Description: "Espontáneo y generoso; convierte cualquier lugar en un escenario.", Celebrities: []string{"Marilyn Monroe", "Elvis Presley", "Jamie Foxx"}},
}

var recommendations = map[string][]string{
	"INTJ": {"Delegá antes de agotarte: no todo plan necesita tu ejecución.", "Compartí el razonamiento, no solo la conclusión.", "Agendá tiempo sin objetivo; las mejores estrategias nacen del ocio."},
	"INTP": {"Poné fecha de cierre a tus análisis.", "Explicá tus ideas en términos simples al menos una vez por semana.", "Cuidá las rutinas físicas que tu cabeza considera triviales."},
	"ENTJ": {"Escuchá una objeción completa antes de refutarla.", "Reconocé en voz alta el trabajo ajeno.", "Programá descanso como si fuera una reunión."},
	"ENTP": {"Elegí un proyecto y terminalo antes de abrir el siguiente.", "No todo debate vale la pena: medí el costo relacional.", "Anotá tus ideas; no confíes en recordarlas."},
	"INFJ": {"Decí que no sin justificarte durante diez minutos.", "Compartí tus necesidades antes de llegar al límite.", "Aceptá que no podés salvar a todos."},
	"INFP": {"Convertí un ideal en una acción pequeña esta semana.", "El conflicto directo a veces es el camino más amable.", "Celebrá lo terminado aunque no sea perfecto."},
	"ENFJ": {"Preguntate qué querés vos antes de preguntar qué necesita el grupo.", "Tolerá el silencio en una conversación.", "No confundas armonía con acuerdo."},
	"ENFP": {"Protegé dos horas diarias sin estímulos nuevos.", "Cerrá los compromisos abiertos antes de sumar otros.", "La rutina no es tu enemiga: es tu batería."},
	"ISTJ": {"Probá un cambio pequeño por semana sin plan B.", "Expresá aprecio aunque te parezca obvio.", "No todos los errores ajenos requieren corrección."},
	"ISFJ": {"Pedí ayuda antes de necesitarla con urgencia.", "Tu descanso también es responsabilidad tuya.", "Decí lo que te molesta cuando pasa, no meses después."},
	"ESTJ": {"Preguntá 'cómo estás' sin agenda.", "Las reglas sirven a las personas, no al revés.", "Delegá resultados, no procedimientos."},
	"ESFJ": {"La crítica no siempre es rechazo personal.", "Reservá tiempo para vínculos que te recargan, no solo que te necesitan.", "Opiná distinto en voz alta al menos una vez por semana."},
	"ISTP": {"Avisá qué estás pensando antes de actuar en equipo.", "Los compromisos largos no son trampas.", "Nombrá lo que sentís aunque sea en una palabra."},
	"ISFP": {"Mostrá tu trabajo antes de considerarlo listo.", "Planificar tres días no mata la espontaneidad.", "Tu opinión vale incluso cuando genera fricción."},
	"ESTP": {"Pensá la segunda consecuencia, no solo la primera.", "El aburrimiento no siempre pide acción.", "Escuchá las historias ajenas hasta el final."},
	"ESFP": {"Guardá algo del mes, aunque sea simbólico.", "Los silencios incómodos a veces traen datos importantes.", "Terminá lo que emociona menos al final que al principio."},
}
