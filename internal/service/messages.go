package service

// Fallback text shown in place of data. Upstream errors never reach users.
const (
	ErrorTitle = "Error~"

	MsgCompanyFailed    = "Failed to get company info!"
	MsgLocationsFailed  = "Failed to load restaurant info!"
	MsgNoRestaurant     = "Could not find an appropriate restaurant link for the week! Current algorithm might be outdated."
	MsgGroupsFailed     = "Failed to get groups and categories from the website!"
	MsgNoGroupForDay    = "Could not find a group for the given day!"
	MsgMenuFailed       = "Failed to get the menu from the website!"
	MsgNothingOnMenu    = "There is nothing on the menu?"
	MsgAnnounceNoGroup  = "Failed to find a group for info."
	MsgAnnounceNoCat    = "Failed to find a category for announcements."
	MsgAnnounceMenu     = "Failed to get the menu from the website."
	MsgAnnounceNone     = "No announcement could be found."
	MsgAnnounceFailed   = "Failed to get announcement data."
	MsgAnnouncementVoid = "The announcement is empty?"

	NoMenuTitle = "No menu data!!"
	MsgNoMenu   = "Could not find the given group, please check your query."
	EmptyMenu   = "This menu is empty."
)
