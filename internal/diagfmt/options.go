package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of markers.
type PrettyOpts struct {
	Color    bool
	Context  int8 // строк контекста вокруг места ошибки
	PathMode PathMode
	Width    uint8 // максимальная ширина строки, 0 - не ограничено
}

// JSONOpts configures JSON output of markers.
type JSONOpts struct {
	PathMode PathMode
	Max      int // обрезка вывода, не Bag
}
