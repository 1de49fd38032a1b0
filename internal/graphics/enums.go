package graphics

// GL enum values used by this package. They match the values in the
// OpenGL registry, so a Backend can pass them straight through.
const (
	NO_ERROR = 0x0
	FALSE    = 0
	TRUE     = 1

	VERSION = 0x1F02

	COLOR_BUFFER_BIT = 0x4000

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4

	FLOAT        = 0x1406
	UNSIGNED_INT = 0x1405
	TRIANGLES    = 0x0004

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	VALIDATE_STATUS = 0x8B83
	INFO_LOG_LENGTH = 0x8B84

	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
)

// sizeOf returns the byte size of one element of the given GL type
func sizeOf(glType uint32) int {
	switch glType {
	case FLOAT, UNSIGNED_INT:
		return 4
	}
	return 0
}
