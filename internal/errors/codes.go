package errors

// Error codes for the tsanchor translator
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Translation errors
// W0001-W0099: Warnings (never fail a translation)

const (
	// E0001: Top-level construct the translator does not accept
	ErrorInvalidSyntax = "E0001"

	// E0002: Default export that is not a class
	ErrorInvalidDefaultExport = "E0002"

	// E0003: No default-exported program class
	ErrorMissingProgramClass = "E0003"

	// E0004: Named export that is not an interface
	ErrorInvalidNamedExport = "E0004"

	// E0005: Type name that is neither primitive, framework nor declared
	ErrorUnresolvedType = "E0005"

	// E0006: Class member shape that has no translation
	ErrorUnsupportedMember = "E0006"

	// E0007: Statement shape inside an instruction body that has no translation
	ErrorUnsupportedStatement = "E0007"

	// E0008: Duplicate declaration (strict mode, instructions, fields)
	ErrorDuplicateDeclaration = "E0008"

	// E0009: Reference to an account binding the instruction does not have
	ErrorUnknownAccountBinding = "E0009"

	// E0010: Interface member that cannot become a record field
	ErrorInvalidInterfaceMember = "E0010"

	// E0011: Record that contains itself
	ErrorRecursiveType = "E0011"

	// E0012: Expression shape that has no translation
	ErrorUnsupportedExpression = "E0012"

	// W0001: Private or protected method skipped
	WarningSkippedHelper = "W0001"

	// W0002: Import that the framework does not provide
	WarningUnknownImport = "W0002"

	// W0003: Imported name that nothing references
	WarningUnusedImport = "W0003"

	// W0004: Instruction parameter that the body never reads
	WarningUnusedParameter = "W0004"

	// W0005: Local variable that is never read
	WarningUnusedVariable = "W0005"

	// W0006: Framework type used without an import
	WarningMissingImport = "W0006"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorInvalidSyntax:
		return "Top-level item is not an import, a default-exported class or an exported interface"
	case ErrorInvalidDefaultExport:
		return "The default export must be the program class"
	case ErrorMissingProgramClass:
		return "The module has no default-exported program class"
	case ErrorInvalidNamedExport:
		return "Named exports must be interfaces"
	case ErrorUnresolvedType:
		return "Type is not a primitive, a framework type or a declared interface"
	case ErrorUnsupportedMember:
		return "Class member cannot be translated"
	case ErrorUnsupportedStatement:
		return "Statement cannot be translated"
	case ErrorDuplicateDeclaration:
		return "Duplicate declaration found"
	case ErrorUnknownAccountBinding:
		return "Account binding is not a parameter of the instruction"
	case ErrorInvalidInterfaceMember:
		return "Interface member cannot become a record field"
	case ErrorRecursiveType:
		return "Record type contains itself"
	case ErrorUnsupportedExpression:
		return "Expression cannot be translated"
	case WarningSkippedHelper:
		return "Private or protected method is not an instruction and is skipped"
	case WarningUnknownImport:
		return "Import is not provided by the framework"
	case WarningUnusedImport:
		return "Imported name is never used"
	case WarningUnusedParameter:
		return "Parameter is never used"
	case WarningUnusedVariable:
		return "Variable is never used"
	case WarningMissingImport:
		return "Framework type is used without being imported"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case IsWarning(code):
		return "Warning"
	case code >= "E0001" && code <= "E0004":
		return "Module Structure"
	case code == ErrorInvalidInterfaceMember:
		return "Module Structure"
	case code >= "E0005" && code < "E0100":
		return "Program"
	default:
		return "Unknown"
	}
}
