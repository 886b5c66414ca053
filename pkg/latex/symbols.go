package latex

// SymbolTable maps operator spellings to their LaTeX equivalents. An
// operator absent from the table is a rendering error, never a guess.
type SymbolTable map[string]string

func DefaultSymbols() SymbolTable {
	return SymbolTable{
		"=":  `=`,
		"==": `=`,
		"!=": `\neq`,
		">=": `\geq`,
		"<=": `\leq`,
		">":  `>`,
		"<":  `<`,
		"+":  `+`,
		"-":  `-`,
		"*":  `\cdot`,
		"/":  `\div`,
		"%":  `\bmod`,
	}
}
