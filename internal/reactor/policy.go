package reactor

import (
	"fmt"

	"github.com/aliskhannn/request-notifier/internal/model"
)

// Content is the rendered title and body of a notification.
type Content struct {
	Title string
	Body  string
}

const (
	volunteerFallback = "A volunteer"
	senderFallback    = "Someone"

	chatGenericBody  = "You have new messages."
	chatSingleBody   = "Sent you a message."
	clickAction      = "FLUTTER_NOTIFICATION_CLICK"
	clickActionField = "click_action"
)

var fixedStatusContent = map[model.RequestStatus]Content{
	model.StatusCreated: {
		Title: "Request Submitted",
		Body:  "Your request has been submitted. We will notify you when a volunteer accepts it.",
	},
	model.StatusArriving: {
		Title: "Volunteer Arriving",
		Body:  "Your volunteer is arriving now.",
	},
	model.StatusInProgress: {
		Title: "Help In Progress",
		Body:  "Your volunteer has started working on your request.",
	},
	model.StatusCompleted: {
		Title: "Request Completed",
		Body:  "Your request has been completed. Thank you for using our service.",
	},
	model.StatusCancelled: {
		Title: "Request Cancelled",
		Body:  "Your request has been cancelled.",
	},
}

// StatusContent maps a request status to its notification content.
//
// Every status yields content; unknown statuses get a generic message.
// volunteer is only used for the assigned status.
func StatusContent(status model.RequestStatus, volunteer string) Content {
	if status == model.StatusAssigned {
		if volunteer == "" {
			volunteer = volunteerFallback
		}
		return Content{
			Title: "Request Accepted",
			Body:  fmt.Sprintf("%s has accepted your request and is on the way.", volunteer),
		}
	}

	if c, ok := fixedStatusContent[status]; ok {
		return c
	}

	return Content{
		Title: "Request Update",
		Body:  fmt.Sprintf("Your request status changed to %s.", status),
	}
}

// ChatContent renders a chat notification. Coalesced content replaces the
// message text with a generic body and pluralizes the title.
func ChatContent(sender, text string, coalesced bool) Content {
	if coalesced {
		return Content{
			Title: fmt.Sprintf("New messages from %s", sender),
			Body:  chatGenericBody,
		}
	}
	if text == "" {
		text = chatSingleBody
	}

	return Content{
		Title: fmt.Sprintf("New message from %s", sender),
		Body:  text,
	}
}
