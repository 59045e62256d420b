package grammar

import "strings"

// reservedWords may not be used as user-defined words. The list follows the
// Fujitsu Siemens COBOL reference (U41112-J-Z125-3-76), with some words left
// out which are commonly used as names in real programs.
var reservedWords = func() map[string]struct{} {
	set := make(map[string]struct{}, len(reservedList))
	for _, w := range reservedList {
		set[w] = struct{}{}
	}
	return set
}()

var reservedList = []string{
	"ACCEPT", "ACCESS", "ACTIVE-CLASS", "ADD", "ADDRESS", "ADVANCING",
	"AFTER", "ALL", "ALLOCATE", "ALPHABET", "ALPHABETIC", "ALPHABETIC-LOWER",
	"ALPHABETIC-UPPER", "ALPHANUMERIC", "ALPHANUMERIC-EDITED", "ALSO",
	"ALTER", "ALTERNATE", "AND", "ANY", "ANYCASE", "ARE", "AREA", "AREAS",
	"AS", "ASCENDING", "ASSIGN", "AT", "AUTHOR", "B-AND", "B-NOT", "B-OR",
	"B-XOR", "BASED", "BEFORE", "BINARY", "BINARY-CHAR", "BINARY-DOUBLE",
	"BINARY-LONG", "BINARY-SHORT", "BIT", "BLANK", "BLOCK", "BOOLEAN",
	"BOTTOM", "BY", "CALL", "CANCEL", "CBL-CTR", "CF", "CH", "CHAINING",
	"CHARACTER", "CHARACTERS", "CHECKING", "CLASS", "CLASS-ID", "CLOCK-UNITS",
	"CLOSE", "CODE", "CODE-SET", "COL", "COLLATING", "COLS", "COLUMN",
	"COLUMNS", "COMMA", "COMMIT", "COMMON", "COMMUNICATION", "COMP", "COMP-1",
	"COMP-2", "COMP-3", "COMP-5", "COMPUTATIONAL", "COMPUTATIONAL-1",
	"COMPUTATIONAL-2", "COMPUTATIONAL-3", "COMPUTATIONAL-5", "COMPUTE",
	"CONDITION", "CONFIGURATION", "CONSTANT", "CONTAINS", "CONTENT",
	"CONTINUE", "CONTROL", "CONTROLS", "CONVERTING", "COPY", "CORR",
	"CORRESPONDING", "COUNT", "CREATING", "CRT", "CURRENCY", "DATA",
	"DATA-POINTER", "DATABASE-KEY", "DATABASE-KEY-LONG", "DATE",
	"DATE-COMPILED", "DATE-WRITTEN", "DAY", "DAY-OF-WEEK", "DE", "DEBUGGING",
	"DECIMAL-POINT", "DECLARATIVES", "DEFAULT", "DELETE", "DELIMITED",
	"DELIMITER", "DEPENDING", "DESCENDING", "DETAIL", "DISABLE", "DISC",
	"DISPLAY", "DIVIDE", "DIVISION", "DOWN", "DUPLICATES", "DYNAMIC",
	"EBCDIC", "EC", "ELSE", "ENABLE", "END", "END-ACCEPT", "END-ADD",
	"END-CALL", "END-COMPUTE", "END-DELETE", "END-DISPLAY", "END-DIVIDE",
	"END-EVALUATE", "END-IF", "END-INVOKE", "END-MULTIPLY", "END-OF-PAGE",
	"END-PERFORM", "END-READ", "END-RECEIVE", "END-RETURN", "END-REWRITE",
	"END-SEARCH", "END-START", "END-STRING", "END-SUBTRACT", "END-UNSTRING",
	"END-WRITE", "ENTRY", "ENVIRONMENT", "EO", "EOP", "EQUAL", "ERROR",
	"EVALUATE", "EVERY", "EXCEPTION", "EXCEPTION-OBJECT", "EXEC", "EXIT",
	"EXTEND", "EXTENDED", "EXTERNAL", "FACTORY", "FD", "FILE", "FILE-CONTROL",
	"FILLER", "FINAL", "FIRST", "FLOAT-EXTENDED", "FLOAT-LONG", "FLOAT-SHORT",
	"FOOTING", "FOR", "FORMAT", "FREE", "FROM", "FUNCTION", "FUNCTION-ID",
	"GENERATE", "GET", "GIVING", "GLOBAL", "GO", "GOBACK", "GREATER", "GROUP",
	"GROUP-USAGE", "HEADING", "HIGH-VALUE", "HIGH-VALUES", "I-O",
	"I-O-CONTROL", "ID", "IDENTIFICATION", "IF", "IGNORING", "IN", "INDEX",
	"INDEXED", "INDICATE", "INHERITS", "INITIAL", "INITIALIZE", "INITIATE",
	"INPUT", "INPUT-OUTPUT", "INSPECT", "INSTALLATION", "INTERFACE",
	"INTERFACE-ID", "INTO", "INVALID", "INVOKE", "IS", "JUST", "JUSTIFIED",
	"KEY", "LABEL", "LAST", "LEFT", "LESS", "LIMIT", "LIMITS", "LINAGE",
	"LINE", "LINES", "LINKAGE", "LOCAL-STORAGE", "LOCALE", "LOCK",
	"LOW-VALUE", "LOW-VALUES", "MEMORY", "MERGE", "MESSAGE", "METHOD",
	"METHOD-ID", "MINUS", "MODE", "MODULES", "MORE-LABELS", "MOVE",
	"MULTIPLE", "MULTIPLY", "NATIONAL", "NATIONAL-EDITED", "NATIVE",
	"NEGATIVE", "NESTED", "NEXT", "NO", "NOT", "NULL", "NUMBER", "NUMERIC",
	"NUMERIC-EDITED", "OBJECT", "OBJECT-COMPUTER", "OCCURS", "OF", "OFF",
	"OMITTED", "ON", "OPEN", "OPTIONAL", "OR", "ORDER", "ORGANIZATION",
	"OTHER", "OUTPUT", "OVERFLOW", "OVERRIDE", "PACKED-DECIMAL", "PADDING",
	"PAGE", "PERFORM", "PF", "PH", "PIC", "PICTURE", "PLUS", "POINTER",
	"POSITION", "POSITIVE", "PRESENT", "PRINT-SWITCH", "PRINTING",
	"PROCEDURE", "PROCEED", "PROGRAM", "PROGRAM-ID", "PROGRAM-POINTER",
	"PROPERTY", "PROTOTYPE", "PURGE", "QUOTE", "QUOTES", "RAISE", "RAISING",
	"RD", "READ", "RECEIVE", "RECORD", "RECORDING", "RECORDS", "REDEFINES",
	"REEL", "REFERENCE", "RELATIVE", "RELEASE", "REMAINDER", "REMOVAL",
	"RENAMES", "REPEATED", "REPLACE", "REPLACING", "REPORT", "REPORTING",
	"REPORTS", "REPOSITORY", "RERUN", "RESERVE", "RESET", "RESUME", "RETRY",
	"RETURN", "RETURNING", "REVERSED", "REWIND", "REWRITE", "RF", "RH",
	"RIGHT", "ROUNDED", "RUN", "SAME", "SCREEN", "SD", "SEARCH", "SECTION",
	"SECURITY", "SEGMENT-LIMIT", "SELECT", "SELF", "SEND", "SENTENCE",
	"SEPARATE", "SEQUENCE", "SEQUENTIAL", "SET", "SHARING", "SIGN", "SIZE",
	"SORT", "SORT-MERGE", "SORT-TAPE", "SORT-TAPES", "SOURCE",
	"SOURCE-COMPUTER", "SOURCES", "SPACE", "SPACES", "SPECIAL-NAMES",
	"STANDARD", "STANDARD-1", "STANDARD-2", "START", "STATUS", "STOP",
	"STRING", "SUBTRACT", "SUPER", "SUPPRESS", "SUPPRESSING", "SYMBOLIC",
	"SYNC", "SYNCHRONIZED", "SYSTEM-DEFAULT", "TABLE", "TALLYING", "TAPE",
	"TAPES", "TERMINAL", "TERMINATE", "TEST", "THAN", "THEN", "THROUGH",
	"THRU", "TIME", "TIMES", "TO", "TOP", "TRY", "TYPE", "TYPEDEF", "UNIT",
	"UNITS", "UNIVERSAL", "UNLOCK", "UNSTRING", "UNTIL", "UP", "UPON",
	"USAGE", "USE", "USER-DEFAULT", "USING", "VAL-STATUS", "VALID",
	"VALIDATE", "VALIDATE-STATUS", "VALUE", "VALUES", "VARYING", "WHEN",
	"WITH", "WORDS", "WORKING-STORAGE", "WRITE", "ZERO", "ZEROES", "ZEROS",
}

// IsReserved reports whether word is a reserved word, ignoring case.
func IsReserved(word string) bool {
	_, ok := reservedWords[strings.ToUpper(word)]
	return ok
}

// ReservedWords returns the reserved words in alphabetical order.
func ReservedWords() []string {
	return append([]string(nil), reservedList...)
}
