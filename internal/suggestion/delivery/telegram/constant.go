package telegram

import "time"

const (
	defaultProcessTimeout = 60 * time.Second
	maxPhotoBytes         = 10 << 20
	dueDateLayout         = "Mon, 02 Jan 2006 15:04"

	messageStart       = "👋 Welcome! Send me a note, a list, or a photo of your handwritten notes and I will suggest tasks from it.\n\nExample: \"Call Dr. Smith urgently tomorrow #health\""
	messageHelp        = "How to use:\n\n• Send plain text: every line that reads like a task becomes a suggestion.\n• Send a photo of a note: I read it and do the same.\n• Words like \"urgent\" or \"!!\" raise the priority, dates like \"friday\" or \"15/06\" set a due date, #tags are kept."
	messageWorking     = "⏳ Reading your note..."
	messageNoTasks     = "⚠️ I could not find any tasks in your note. Try one task per line, starting with a verb or a dash."
	messageFailed      = "Something went wrong while processing your note. Please try again."
	messageUnsupported = "Please send text or a photo."
)
