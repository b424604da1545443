package token

// Entry описывает одно ключевое слово: документация для hover,
// роль в отступах для форматтера. Единая таблица — лексер, completion,
// hover и форматтер читают только её.
type Entry struct {
	Doc    string
	Header bool // объявление типа диаграммы (первая значимая строка)
	Opens  bool // блок становится глубже после этой строки
	Closes bool // строка сама выравнивается на уровень выше
}

var keywords = map[string]Entry{
	// Diagram kind headers.
	"graph":           {Doc: "**graph** — declares a flowchart; followed by a direction (`TD`, `LR`, ...).", Header: true, Opens: true},
	"flowchart":       {Doc: "**flowchart** — declares a flowchart; followed by a direction (`TD`, `LR`, ...).", Header: true, Opens: true},
	"sequenceDiagram": {Doc: "**sequenceDiagram** — declares a sequence diagram of messages between participants.", Header: true, Opens: true},
	"classDiagram":    {Doc: "**classDiagram** — declares a class diagram with classes and relations.", Header: true, Opens: true},
	"stateDiagram":    {Doc: "**stateDiagram** — declares a state diagram; `stateDiagram-v2` selects the newer renderer.", Header: true, Opens: true},
	"erDiagram":       {Doc: "**erDiagram** — declares an entity-relationship diagram.", Header: true, Opens: true},
	"gantt":           {Doc: "**gantt** — declares a Gantt chart; configure with `dateFormat` and `section`.", Header: true, Opens: true},
	"pie":             {Doc: "**pie** — declares a pie chart; values follow as `\"label\" : number`.", Header: true, Opens: true},
	"journey":         {Doc: "**journey** — declares a user-journey diagram.", Header: true, Opens: true},
	"gitGraph":        {Doc: "**gitGraph** — declares a git commit graph.", Header: true, Opens: true},
	"mindmap":         {Doc: "**mindmap** — declares a mind map; nesting follows indentation.", Header: true, Opens: true},
	"timeline":        {Doc: "**timeline** — declares a timeline of periods and events.", Header: true, Opens: true},

	// Structure.
	"subgraph":  {Doc: "**subgraph** — opens a named group of nodes; closed by `end`.", Opens: true},
	"end":       {Doc: "**end** — closes the innermost `subgraph`, `loop`, `alt`, `opt`, `par` or `rect` block.", Closes: true},
	"direction": {Doc: "**direction** — sets the layout direction inside a subgraph (`TB`, `LR`, ...)."},

	// Flowchart directions.
	"TD": {Doc: "**TD** — top-down layout (same as `TB`)."},
	"TB": {Doc: "**TB** — top-to-bottom layout."},
	"LR": {Doc: "**LR** — left-to-right layout."},
	"RL": {Doc: "**RL** — right-to-left layout."},
	"BT": {Doc: "**BT** — bottom-to-top layout."},

	// Sequence diagrams.
	"participant": {Doc: "**participant** — declares a participant lifeline; `participant A as Alias`."},
	"actor":       {Doc: "**actor** — declares a participant rendered as an actor figure."},
	"activate":    {Doc: "**activate** — marks a participant as active until `deactivate`."},
	"deactivate":  {Doc: "**deactivate** — ends an activation started by `activate`."},
	"note":        {Doc: "**note** — attaches a note: `note right of A: text` or `note over A,B: text`."},
	"over":        {Doc: "**over** — positions a note across one or more participants."},
	"right":       {Doc: "**right** — note position: `note right of A: text`."},
	"left":        {Doc: "**left** — note position: `note left of A: text`."},
	"of":          {Doc: "**of** — part of the `note right of`/`note left of` clause."},
	"loop":        {Doc: "**loop** — repeats the enclosed messages; closed by `end`.", Opens: true},
	"alt":         {Doc: "**alt** — alternative branches separated by `else`; closed by `end`.", Opens: true},
	"else":        {Doc: "**else** — next branch of an `alt` block.", Opens: true, Closes: true},
	"opt":         {Doc: "**opt** — optional fragment; closed by `end`.", Opens: true},
	"par":         {Doc: "**par** — parallel branches separated by `and`; closed by `end`.", Opens: true},
	"and":         {Doc: "**and** — next branch of a `par` block.", Opens: true, Closes: true},
	"rect":        {Doc: "**rect** — draws a colored background rectangle; closed by `end`.", Opens: true},
	"critical":    {Doc: "**critical** — a fragment that must happen; closed by `end`.", Opens: true},
	"break":       {Doc: "**break** — a fragment that interrupts the flow; closed by `end`.", Opens: true},
	"box":         {Doc: "**box** — groups participants in a colored box; closed by `end`.", Opens: true},
	"autonumber":  {Doc: "**autonumber** — numbers messages automatically."},

	// Class and state diagrams.
	"class":     {Doc: "**class** — declares a class; members go inside `{ }`."},
	"namespace": {Doc: "**namespace** — groups classes; members go inside `{ }`."},
	"state":     {Doc: "**state** — declares a state; composite states use `{ }`."},

	// Gantt, pie, journey.
	"title":       {Doc: "**title** — sets the diagram title."},
	"section":     {Doc: "**section** — starts a named section (gantt, journey, timeline)."},
	"dateFormat":  {Doc: "**dateFormat** — input date format for a Gantt chart, e.g. `YYYY-MM-DD`."},
	"axisFormat":  {Doc: "**axisFormat** — axis label format for a Gantt chart."},
	"excludes":    {Doc: "**excludes** — dates excluded from a Gantt schedule, e.g. `weekends`."},
	"todayMarker": {Doc: "**todayMarker** — styles or hides the today line of a Gantt chart."},
	"showData":    {Doc: "**showData** — renders the raw values next to pie slices."},

	// Styling and interaction.
	"style":     {Doc: "**style** — inline-styles a node: `style id fill:#f9f,stroke:#333`."},
	"classDef":  {Doc: "**classDef** — defines a reusable style class for nodes."},
	"click":     {Doc: "**click** — binds a link or callback to a node."},
	"linkStyle": {Doc: "**linkStyle** — styles an edge by index."},
}

// operatorDocs documents edge glyphs for hover; these are not identifiers
// and never participate in completion.
var operatorDocs = map[string]string{
	"-->":  "**-->** — arrow edge (flowchart) or dotted async arrow reply (sequence).",
	"---":  "**---** — open (undirected) edge.",
	"-.->": "**-.->** — dotted arrow edge.",
	"==>":  "**==>** — thick arrow edge.",
	"->>":  "**->>** — solid arrow message (sequence diagram).",
	"-->>": "**-->>** — dotted arrow message (sequence diagram).",
	"--x":  "**--x** — message with a cross end (sequence diagram).",
	"--o":  "**--o** — edge with a circle end.",
}

// LookupKeyword возвращает kind и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	if _, ok := keywords[ident]; ok {
		return Keyword, true
	}
	return Ident, false
}

// Doc returns hover documentation for a keyword or edge glyph.
func Doc(word string) (string, bool) {
	if e, ok := keywords[word]; ok {
		return e.Doc, true
	}
	if d, ok := operatorDocs[word]; ok {
		return d, true
	}
	return "", false
}

// IsHeader reports whether the keyword declares a diagram kind.
func IsHeader(word string) bool {
	e, ok := keywords[word]
	return ok && e.Header
}

// Opens reports whether lines starting with this keyword deepen indentation.
func Opens(word string) bool {
	e, ok := keywords[word]
	return ok && e.Opens
}

// Closes reports whether lines starting with this keyword dedent themselves.
func Closes(word string) bool {
	e, ok := keywords[word]
	return ok && e.Closes
}

// Keywords returns all keyword identifiers in unspecified order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for w := range keywords {
		out = append(out, w)
	}
	return out
}
