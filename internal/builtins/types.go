package builtins

// BuiltinType represents a primitive type of the contract input language
type BuiltinType string

const (
	// Unsigned integers
	U8   BuiltinType = "u8"
	U16  BuiltinType = "u16"
	U32  BuiltinType = "u32"
	U64  BuiltinType = "u64"
	U128 BuiltinType = "u128"

	// Signed integers
	I8   BuiltinType = "i8"
	I16  BuiltinType = "i16"
	I32  BuiltinType = "i32"
	I64  BuiltinType = "i64"
	I128 BuiltinType = "i128"

	// Other primitives
	Bool    BuiltinType = "bool"
	Boolean BuiltinType = "boolean"
	String  BuiltinType = "string"
	Pubkey  BuiltinType = "Pubkey"
)

// BuiltinTypes contains all valid built-in types
var BuiltinTypes = map[string]bool{
	string(U8):   true,
	string(U16):  true,
	string(U32):  true,
	string(U64):  true,
	string(U128): true,

	string(I8):   true,
	string(I16):  true,
	string(I32):  true,
	string(I64):  true,
	string(I128): true,

	string(Bool):    true,
	string(Boolean): true,
	string(String):  true,
	string(Pubkey):  true,
}

// IsBuiltinType checks if a type name is a built-in type
func IsBuiltinType(typeName string) bool {
	return BuiltinTypes[typeName]
}

// IsIntegerType checks if a type is a signed or unsigned integer type
func IsIntegerType(typeName string) bool {
	return BitWidth(typeName) > 0
}

// IsSignedType reports whether typeName is one of the iN types
func IsSignedType(typeName string) bool {
	switch BuiltinType(typeName) {
	case I8, I16, I32, I64, I128:
		return true
	default:
		return false
	}
}

// IsBoolType accepts both spellings of the boolean type
func IsBoolType(typeName string) bool {
	return typeName == string(Bool) || typeName == string(Boolean)
}

// BitWidth returns the width of an integer type, or 0 for anything else
func BitWidth(typeName string) int {
	switch BuiltinType(typeName) {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32:
		return 32
	case U64, I64:
		return 64
	case U128, I128:
		return 128
	default:
		return 0
	}
}

// RustName maps a built-in type to its Rust spelling
func RustName(typeName string) string {
	switch BuiltinType(typeName) {
	case Bool, Boolean:
		return "bool"
	case String:
		return "String"
	default:
		return typeName
	}
}

// Size is the Borsh-encoded byte size of a built-in type.
// Strings are length-prefixed and bounded by maxStringLen.
func Size(typeName string, maxStringLen int) int {
	if width := BitWidth(typeName); width > 0 {
		return width / 8
	}
	switch BuiltinType(typeName) {
	case Bool, Boolean:
		return 1
	case Pubkey:
		return 32
	case String:
		return 4 + maxStringLen
	default:
		return 0
	}
}
