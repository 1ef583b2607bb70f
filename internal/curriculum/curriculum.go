package curriculum

// Board identifies an education board. Only the Maharashtra State Board is
// supported today; the table is keyed so more boards can be added without
// touching consumers.
type Board string

const BoardMaharashtra Board = "Maharashtra State Board"

// boardIDs maps profile-level board identifiers to table keys.
var boardIDs = map[string]Board{
	"maharashtra_state_board": BoardMaharashtra,
}

// ResolveBoard maps a stored board identifier (e.g. from the student
// profile) to a Board table key. Unknown identifiers are passed through
// unchanged so an exact-name lookup still works.
func ResolveBoard(id string) Board {
	if b, ok := boardIDs[id]; ok {
		return b
	}
	return Board(id)
}

// subjectsByGrade is the fixed curriculum table: which subjects a student
// of a given (board, grade) studies. Order matters for display.
var subjectsByGrade = map[Board]map[int][]string{
	BoardMaharashtra: {
		1: {"English", "Marathi", "Mathematics", "Art Education", "Physical Education", "Work Experience"},
		2: {"English", "Marathi", "Mathematics", "Art Education", "Physical Education", "Work Experience"},
		3: {"English", "Marathi", "Hindi", "Mathematics", "Environmental Studies - Part I", "Environmental Studies - Part II", "Art Education", "Physical Education", "Work Experience"},
		4: {"English", "Marathi", "Hindi", "Mathematics", "Environmental Studies - Part I", "Environmental Studies - Part II", "Art Education", "Physical Education", "Work Experience"},
		5: {"English", "Marathi", "Hindi", "Mathematics", "Environmental Studies - Part I", "Environmental Studies - Part II", "Art Education", "Physical Education", "Work Experience"},
		6: {"English", "Marathi", "Hindi", "Mathematics", "Science", "History and Civics", "Geography", "Art Education", "Physical Education"},
		7: {"English", "Marathi", "Hindi", "Mathematics", "Science", "History and Civics", "Geography", "Art Education", "Physical Education"},
		8: {"English", "Marathi", "Hindi", "Mathematics", "Science", "History and Civics", "Geography", "Art Education", "Physical Education", "Sanskrit"},
	},
}

// Subjects returns the ordered subject list for (board, grade).
// Returns nil when the board or grade is unknown.
func Subjects(board Board, grade int) []string {
	grades, ok := subjectsByGrade[board]
	if !ok {
		return nil
	}
	subjects := grades[grade]
	if subjects == nil {
		return nil
	}
	out := make([]string, len(subjects))
	copy(out, subjects)
	return out
}

// Grades returns the grades available for a board, in ascending order.
func Grades(board Board) []int {
	grades, ok := subjectsByGrade[board]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(grades))
	for g := 1; g <= 12; g++ {
		if _, ok := grades[g]; ok {
			out = append(out, g)
		}
	}
	return out
}

// aliases folds compound or regional subject names onto the subjects that
// carry keyword lists. The EVS mappings are coarse: Part I is
// nature/science flavored, Part II is social/history flavored.
var aliases = map[string]string{
	"History and Civics":              "History",
	"Environmental Studies - Part I":  "Science",
	"Environmental Studies - Part II": "History",
}

// ResolveAlias returns the keyword-carrying subject for a curriculum
// subject name, or the name unchanged when it has its own keyword list.
func ResolveAlias(subject string) string {
	if base, ok := aliases[subject]; ok {
		return base
	}
	return subject
}
