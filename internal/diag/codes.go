package diag

// Code identifies the origin of a marker.
type Code string

const (
	// ValSyntax — общая ошибка валидации диаграммы.
	ValSyntax Code = "VAL0001"
	// ValNoHeader — первая значимая строка не объявляет тип диаграммы.
	ValNoHeader Code = "VAL0002"
	// ValUnbalancedEnd — лишний или отсутствующий `end`.
	ValUnbalancedEnd Code = "VAL0003"
	// ValUnterminatedString — незакрытая кавычка.
	ValUnterminatedString Code = "VAL0004"
	// IOLoadFileError — файл не удалось прочитать.
	IOLoadFileError Code = "IO0001"
)

func (c Code) String() string { return string(c) }
