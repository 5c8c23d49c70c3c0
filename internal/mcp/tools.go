package mcp

import "github.com/mark3labs/mcp-go/mcp"

var addToolDef = mcp.NewTool("reminder_add",
	mcp.WithDescription("Create a reminder for a date. The reminder appears in that date's daily note on the next sync."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Reminder title"),
	),
	mcp.WithString("date",
		mcp.Description("Scheduled date in YYYY-MM-DD form; defaults to today"),
	),
	mcp.WithString("source_file",
		mcp.Description("Note the reminder originated from; defaults to the date's daily note"),
	),
	mcp.WithNumber("priority",
		mcp.Description("Sort priority; lower renders first"),
	),
)

var listToolDef = mcp.NewTool("reminder_list",
	mcp.WithDescription("List reminders for a date, or every reminder."),
	mcp.WithString("date",
		mcp.Description("Scheduled date in YYYY-MM-DD form; defaults to today"),
	),
	mcp.WithBoolean("all",
		mcp.Description("List every reminder regardless of date"),
	),
)

var completeToolDef = mcp.NewTool("reminder_complete",
	mcp.WithDescription("Mark a reminder done or reopen it. Address by key, or by a unique title prefix within a date."),
	mcp.WithString("key",
		mcp.Description("Reminder key"),
	),
	mcp.WithString("title",
		mcp.Description("Title prefix, used when no key is given"),
	),
	mcp.WithString("date",
		mcp.Description("Date scoping the title prefix; defaults to today"),
	),
	mcp.WithBoolean("done",
		mcp.Description("Target state; defaults to true"),
	),
)

var removeToolDef = mcp.NewTool("reminder_remove",
	mcp.WithDescription("Delete a reminder permanently. Address by key, or by a unique title prefix within a date."),
	mcp.WithString("key",
		mcp.Description("Reminder key"),
	),
	mcp.WithString("title",
		mcp.Description("Title prefix, used when no key is given"),
	),
	mcp.WithString("date",
		mcp.Description("Date scoping the title prefix; defaults to today"),
	),
)

var syncToolDef = mcp.NewTool("note_sync",
	mcp.WithDescription("Render a date's reminders into the checklist section of its daily note."),
	mcp.WithString("date",
		mcp.Description("Date to sync in YYYY-MM-DD form; defaults to today"),
	),
)
