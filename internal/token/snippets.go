package token

// Snippet is a multi-line skeleton for one diagram kind. Body keeps
// `${n:placeholder}` tab stops intact; the host's snippet engine expands
// them.
type Snippet struct {
	Label  string
	Detail string
	Body   string
}

var snippets = [...]Snippet{
	{
		Label:  "flowchart",
		Detail: "Flowchart skeleton",
		Body: "graph ${1:TD}\n" +
			"    ${2:A}[${3:Start}] --> ${4:B}{${5:Decision}}\n" +
			"    ${4:B} -->|${6:Yes}| ${7:C}[${8:Result}]\n" +
			"    ${4:B} -->|${9:No}| ${10:D}[${11:End}]\n",
	},
	{
		Label:  "sequence",
		Detail: "Sequence diagram skeleton",
		Body: "sequenceDiagram\n" +
			"    participant ${1:Alice}\n" +
			"    participant ${2:Bob}\n" +
			"    ${1:Alice}->>${2:Bob}: ${3:Hello}\n" +
			"    ${2:Bob}-->>${1:Alice}: ${4:Hi}\n",
	},
	{
		Label:  "class",
		Detail: "Class diagram skeleton",
		Body: "classDiagram\n" +
			"    class ${1:Animal} {\n" +
			"        +${2:String} ${3:name}\n" +
			"        +${4:move}()\n" +
			"    }\n" +
			"    ${1:Animal} <|-- ${5:Dog}\n",
	},
	{
		Label:  "state",
		Detail: "State diagram skeleton",
		Body: "stateDiagram-v2\n" +
			"    [*] --> ${1:Idle}\n" +
			"    ${1:Idle} --> ${2:Running} : ${3:start}\n" +
			"    ${2:Running} --> [*] : ${4:stop}\n",
	},
	{
		Label:  "er",
		Detail: "Entity-relationship diagram skeleton",
		Body: "erDiagram\n" +
			"    ${1:CUSTOMER} ||--o{ ${2:ORDER} : ${3:places}\n" +
			"    ${2:ORDER} ||--|{ ${4:LINE-ITEM} : ${5:contains}\n",
	},
	{
		Label:  "gantt",
		Detail: "Gantt chart skeleton",
		Body: "gantt\n" +
			"    title ${1:Project plan}\n" +
			"    dateFormat YYYY-MM-DD\n" +
			"    section ${2:Phase 1}\n" +
			"        ${3:Task} : ${4:a1}, ${5:2024-01-01}, ${6:7d}\n",
	},
	{
		Label:  "pie",
		Detail: "Pie chart skeleton",
		Body: "pie title ${1:Distribution}\n" +
			"    \"${2:Slice A}\" : ${3:40}\n" +
			"    \"${4:Slice B}\" : ${5:60}\n",
	},
	{
		Label:  "journey",
		Detail: "User journey skeleton",
		Body: "journey\n" +
			"    title ${1:My day}\n" +
			"    section ${2:Morning}\n" +
			"        ${3:Wake up} : ${4:5}: ${5:Me}\n",
	},
}

// Snippets returns the diagram skeletons in stable order.
func Snippets() []Snippet {
	out := make([]Snippet, len(snippets))
	copy(out, snippets[:])
	return out
}
