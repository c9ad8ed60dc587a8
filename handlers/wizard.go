package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"venue-webapp/apiclient"
	"venue-webapp/errors"
	"venue-webapp/wizard"

	"github.com/gofiber/fiber/v2"
)

// StartWizard opens a fresh event-creation draft for the caller.
func StartWizard(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return errors.RaisePermissionsError(c, err.Error())
	}

	draft := drafts.Create()
	draft.Form.EventOrganizerId = sess.Username
	if err := drafts.Save(draft); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "draft created", "data": draft})
}

func GetWizardDraft(c *fiber.Ctx) error {
	draft, err := drafts.Get(c.Params("draftId"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "", "data": draft})
}

// WizardNext merges the submitted fields into the draft, validates the
// current step and advances. Invalid fields block progression and come back
// keyed by field name.
func WizardNext(c *fiber.Ctx) error {
	draft, err := drafts.Get(c.Params("draftId"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	if err := c.BodyParser(&draft.Form); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	if fieldErrs := wizard.Validate(draft.Step, &draft.Form); len(fieldErrs) > 0 {
		return errors.RaiseValidationError(c, fieldErrs)
	}

	draft.Step = wizard.Next(draft.Step, &draft.Form)
	if err := drafts.Save(draft); err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "", "data": draft})
}

func WizardBack(c *fiber.Ctx) error {
	draft, err := drafts.Get(c.Params("draftId"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	draft.Step = wizard.Prev(draft.Step, &draft.Form)
	if err := drafts.Save(draft); err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "", "data": draft})
}

// SubmitWizard sends the reviewed draft to the backend as the multipart
// event-creation request and discards the draft on success.
func SubmitWizard(c *fiber.Ctx) error {
	client, err := clientFor(c)
	if err != nil {
		return errors.RaisePermissionsError(c, err.Error())
	}

	draft, err := drafts.Get(c.Params("draftId"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	if !wizard.CanSubmit(draft.Step) {
		return errors.RaiseBadRequestError(c, "complete all steps before submitting")
	}
	for _, step := range []wizard.Step{wizard.StepBasicInfo, wizard.StepVenueDate, wizard.StepDetails} {
		if fieldErrs := wizard.Validate(step, &draft.Form); len(fieldErrs) > 0 {
			return errors.RaiseValidationError(c, fieldErrs)
		}
	}

	resp, err := client.CreateEvent(c.Context(), buildEventForm(&draft.Form))
	if err != nil {
		return errors.RaiseUpstreamError(c, err.Error())
	}
	if !resp.Success {
		return errors.RaiseUpstreamError(c, resp.Message)
	}

	drafts.Delete(draft.Id)

	return c.JSON(fiber.Map{"status": "success", "message": "event created", "data": resp.Data})
}

func buildEventForm(f *wizard.Form) *apiclient.Form {
	form := apiclient.NewForm()
	form.Set("eventTitle", f.EventTitle)
	form.Set("eventType", f.EventType)
	form.Set("visibilityScope", f.VisibilityScope)
	form.Set("eventOrganizerId", f.EventOrganizerId)
	form.Set("venueId", f.VenueId)
	form.Set("description", f.Description)
	form.Set("isEntryPaid", strconv.FormatBool(f.IsEntryPaid))

	for _, d := range f.Dates {
		if strings.TrimSpace(d) != "" {
			form.Set("dates", d)
		}
	}

	if !f.IsPrivate() {
		form.Set("maxAttendees", f.MaxAttendees)
		if f.EventPhoto != "" {
			form.Set("eventPhoto", f.EventPhoto)
		}
		for _, g := range f.Guests {
			if strings.TrimSpace(g.GuestName) != "" {
				form.Set("guestNames", g.GuestName)
			}
		}
	}
	if f.SpecialNotes != "" {
		form.Set("specialNotes", f.SpecialNotes)
	}
	if f.ExpectedGuests != "" {
		form.Set("expectedGuests", f.ExpectedGuests)
	}
	if f.SocialMediaLinks != "" {
		form.Set("socialMediaLinks", f.SocialMediaLinks)
	}

	return form
}
