package hermes

const (
	StreamName   = "SHORTLIST_EVENTS"
	StreamMaxAge = "168h" // 7 days

	subjectRoot = "shortlist.collection"
)

// SubjectCollectionSaved is published after a collection is replaced.
// Readers holding a view of that collection should re-read it.
func SubjectCollectionSaved(collection string) string {
	return subjectRoot + "." + collection + ".saved"
}

// SubjectAllCollectionsSaved matches every save notification.
func SubjectAllCollectionsSaved() string { return subjectRoot + ".*.saved" }
