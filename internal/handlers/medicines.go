package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/medshare/internal/models"
	"github.com/example/medshare/internal/storage"
)

// publicImagePath is where stored image files are served from.
const publicImagePath = "/images/medicines/"

const maxImageSize = 5 * 1024 * 1024

// MedicineHandler manages the listing lifecycle: public browsing, submission
// with image upload, and the pharmacist approval queue.
type MedicineHandler struct {
	store      *storage.Store
	uploadsDir string
}

// NewMedicineHandler constructs MedicineHandler.
func NewMedicineHandler(store *storage.Store, uploadsDir string) *MedicineHandler {
	return &MedicineHandler{store: store, uploadsDir: uploadsDir}
}

// ListApproved returns approved listings with resolvable image paths.
func (h *MedicineHandler) ListApproved(c *fiber.Ctx) error {
	return h.listByStatus(c, models.StatusApproved)
}

// ListPending returns listings awaiting moderation. Routes must gate this
// behind the professional role.
func (h *MedicineHandler) ListPending(c *fiber.Ctx) error {
	return h.listByStatus(c, models.StatusPending)
}

func (h *MedicineHandler) listByStatus(c *fiber.Ctx, status string) error {
	listings, err := h.store.ListingsByStatus(status)
	if err != nil {
		return err
	}
	for i := range listings {
		listings[i].Image = publicImageURL(listings[i].Image)
	}
	return c.JSON(listings)
}

// Create accepts a multipart listing submission. The image is mandatory;
// validation failures must not leave an orphaned file on disk.
func (h *MedicineHandler) Create(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	name := c.FormValue("name")
	expiry := c.FormValue("expiry")
	condition := c.FormValue("condition")
	price := c.FormValue("price", "0")
	if price == "" {
		price = "0"
	}

	if name == "" || expiry == "" || condition == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return fiber.NewError(fiber.StatusBadRequest, "Only image files are allowed")
	}
	if file.Size > maxImageSize {
		return fiber.NewError(fiber.StatusBadRequest, "Image exceeds the 5MB limit")
	}

	imageName := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	imagePath := filepath.Join(h.uploadsDir, imageName)
	if err := c.SaveFile(file, imagePath); err != nil {
		return err
	}

	id, err := storage.NewListingID()
	if err != nil {
		os.Remove(imagePath)
		return err
	}

	listing := models.Listing{
		ID:        id,
		Name:      name,
		Expiry:    expiry,
		Condition: condition,
		Price:     price,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Image:     imageName,
		Status:    models.StatusPending,
	}

	if err := h.store.CreateListing(listing); err != nil {
		// Roll the upload back so a failed submission leaves no orphan.
		os.Remove(imagePath)
		return err
	}

	listing.Image = publicImageURL(imageName)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Medicine added successfully, pending pharmacist approval",
		"medicine": listing,
	})
}

// Approve marks a pending listing approved.
func (h *MedicineHandler) Approve(c *fiber.Ctx) error {
	return h.setStatus(c, models.StatusApproved)
}

// Reject marks a pending listing rejected.
func (h *MedicineHandler) Reject(c *fiber.Ctx) error {
	return h.setStatus(c, models.StatusRejected)
}

func (h *MedicineHandler) setStatus(c *fiber.Ctx, status string) error {
	id := c.Params("id")
	if err := h.store.SetListingStatus(id, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Listing not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func publicImageURL(name string) string {
	if name == "" {
		return name
	}
	return publicImagePath + strings.TrimSpace(name)
}
