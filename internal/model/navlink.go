package model

// Icon names the glyph drawn next to a navigation link.
type Icon string

const (
	IconInbox          Icon = "inbox"
	IconActionRequired Icon = "triangle-alert"
	IconAccepted       Icon = "check"
	IconRejected       Icon = "x"
	IconConfirmation   Icon = "badge-check"
	IconOthers         Icon = "list"
	IconUnknown        Icon = "mail-question"
	IconDrafts         Icon = "file"
	IconSent           Icon = "send"
	IconJunk           Icon = "archive-x"
	IconTrash          Icon = "trash"
	IconArchive        Icon = "archive"
)

// Variant controls the visual emphasis of a navigation link.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantGhost   Variant = "ghost"
)

// NavLink is one entry of the category navigation rail.
type NavLink struct {
	Title string
	// Label is the count badge; empty means no badge.
	Label   string
	Icon    Icon
	Variant Variant
}

// PrimaryLinks returns the mailbox categories shown in the first group.
func PrimaryLinks() []NavLink {
	return []NavLink{
		{Title: "Inbox", Label: "128", Icon: IconInbox, Variant: VariantDefault},
		{Title: "Action Required", Label: "9", Icon: IconActionRequired, Variant: VariantGhost},
		{Title: "Accepted", Label: "", Icon: IconAccepted, Variant: VariantGhost},
		{Title: "Rejected", Label: "23", Icon: IconRejected, Variant: VariantGhost},
		{Title: "Confirmation", Label: "", Icon: IconConfirmation, Variant: VariantGhost},
		{Title: "Others", Label: "", Icon: IconOthers, Variant: VariantGhost},
		{Title: "Unknown", Label: "", Icon: IconUnknown, Variant: VariantGhost},
	}
}

// SecondaryLinks returns the folder links shown below the separator.
func SecondaryLinks() []NavLink {
	return []NavLink{
		{Title: "Drafts", Label: "9", Icon: IconDrafts, Variant: VariantGhost},
		{Title: "Sent", Label: "", Icon: IconSent, Variant: VariantGhost},
		{Title: "Junk", Label: "23", Icon: IconJunk, Variant: VariantGhost},
		{Title: "Trash", Label: "", Icon: IconTrash, Variant: VariantGhost},
		{Title: "Archive", Label: "", Icon: IconArchive, Variant: VariantGhost},
	}
}
