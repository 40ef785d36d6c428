package handlers

import (
	"time"

	"github.com/DSACMS/kyc-onboarding-api/api/middleware"
	"github.com/DSACMS/kyc-onboarding-api/pkg/choice"
	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
	"github.com/DSACMS/kyc-onboarding-api/pkg/validation"
	"github.com/gofiber/fiber/v2"
)

// CreateClientHandler registers the applicant with ComplyCube. Expects
// middleware.Validate[IdentityClaim] in front of it.
func CreateClientHandler(svc complycube.Service, now func() time.Time) fiber.Handler {
	if now == nil {
		now = time.Now
	}

	return func(c *fiber.Ctx) error {
		claim := middleware.Body[IdentityClaim](c)

		client, err := svc.CreateClient(c.UserContext(), complycube.CreateClientRequest{
			Type:       complycube.ClientTypePerson,
			Email:      claim.Email,
			Mobile:     claim.Mobile,
			Telephone:  claim.Mobile,
			JoinedDate: now().Format(validation.DateLayout),
			PersonDetails: complycube.PersonDetails{
				FirstName:   claim.FirstName,
				LastName:    claim.LastName,
				DOB:         claim.DateOfBirth,
				Nationality: claim.Nationality,
			},
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusOK).JSON(CreateClientResponse{ClientID: client.ID})
	}
}

func CreateDocumentHandler(svc complycube.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := middleware.Body[CreateDocumentRequest](c)

		doc, err := svc.CreateDocument(c.UserContext(), complycube.CreateDocumentRequest{
			ClientID: req.ClientID,
			Type:     req.Type,
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusOK).JSON(CreateDocumentResponse{DocumentID: doc.ID})
	}
}

// UploadDocumentHandler relays the provider's upload confirmation unchanged.
func UploadDocumentHandler(svc complycube.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := middleware.Body[UploadDocumentRequest](c)
		side := choice.Ternary(req.Side == "", complycube.DocumentSideFront, req.Side)

		raw, err := svc.UploadDocument(c.UserContext(), c.Params("id"), side, complycube.UploadDocumentRequest{
			FileName: req.FileName,
			Data:     req.Data,
		})
		if err != nil {
			return err
		}

		return sendRaw(c, raw)
	}
}

func CreateLivePhotoHandler(svc complycube.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := middleware.Body[CreateLivePhotoRequest](c)

		photo, err := svc.CreateLivePhoto(c.UserContext(), complycube.CreateLivePhotoRequest{
			ClientID: req.ClientID,
			Data:     req.Data,
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusOK).JSON(CreateLivePhotoResponse{LivePhotoID: photo.ID})
	}
}

func CreateCheckHandler(svc complycube.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := middleware.Body[CreateCheckRequest](c)

		check, err := svc.CreateCheck(c.UserContext(), complycube.CreateCheckRequest{
			ClientID:    req.ClientID,
			DocumentID:  req.DocumentID,
			LivePhotoID: req.LivePhotoID,
			Type:        complycube.CheckTypeIdentity,
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusOK).JSON(CreateCheckResponse{CheckID: check.ID})
	}
}

// GetCheckHandler returns the provider's check payload as received.
func GetCheckHandler(svc complycube.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := svc.GetCheck(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}

		if len(result.Raw) == 0 {
			return c.Status(fiber.StatusOK).JSON(result)
		}
		return sendRaw(c, result.Raw)
	}
}

// WebSDKTokenHandler issues a token for the hosted capture widget. The
// configured referrer is used when the browser does not send one.
func WebSDKTokenHandler(svc complycube.Service, defaultReferrer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := middleware.Body[WebSDKTokenRequest](c)

		token, err := svc.CreateWebSDKToken(c.UserContext(), complycube.TokenRequest{
			ClientID: req.ClientID,
			Referrer: choice.FirstNonEmpty(req.Referrer, defaultReferrer),
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusOK).JSON(WebSDKTokenResponse{Token: token.Token})
	}
}

func sendRaw(c *fiber.Ctx, raw []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(raw)
}
