package main

import (
	"context"
	"log"
	"os"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/repository"
)

// Seeds a local database with demo users, items, requests, bookings and
// comments so the API has something to serve out of the box.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "shareit.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM items")
	db.Exec("DELETE FROM item_requests")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	requests := repository.NewItemRequestRepository(db)
	bookings := repository.NewBookingRepository(db)
	comments := repository.NewCommentRepository(db)

	log.Println("Creating users...")
	alice := &domain.User{Name: "Alice", Email: "alice@shareit.dev"}
	bob := &domain.User{Name: "Bob", Email: "bob@shareit.dev"}
	carol := &domain.User{Name: "Carol", Email: "carol@shareit.dev"}
	for _, u := range []*domain.User{alice, bob, carol} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("create user:", err)
		}
	}

	log.Println("Creating item requests...")
	wish := &domain.ItemRequest{
		Description: "Looking for a cordless drill for a weekend project",
		RequestorID: carol.ID,
		CreatedAt:   time.Now().Add(-72 * time.Hour),
	}
	if err := requests.Create(ctx, wish); err != nil {
		log.Fatal("create request:", err)
	}

	log.Println("Creating items...")
	drill := &domain.Item{
		Name:        "Cordless drill",
		Description: "18V drill with two batteries",
		Available:   true,
		OwnerID:     alice.ID,
		RequestID:   &wish.ID,
	}
	vase := &domain.Item{
		Name:        "Crystal vase",
		Description: "Tall vase, handle with care",
		Available:   true,
		OwnerID:     alice.ID,
	}
	tent := &domain.Item{
		Name:        "Camping tent",
		Description: "Sleeps four, waterproof",
		Available:   false,
		OwnerID:     bob.ID,
	}
	for _, i := range []*domain.Item{drill, vase, tent} {
		if err := items.Create(ctx, i); err != nil {
			log.Fatal("create item:", err)
		}
	}

	log.Println("Creating bookings...")
	now := time.Now()
	finished := &domain.Booking{
		ItemID:   vase.ID,
		BookerID: bob.ID,
		Start:    now.Add(-96 * time.Hour),
		End:      now.Add(-48 * time.Hour),
		Status:   domain.BookingApproved,
	}
	upcoming := &domain.Booking{
		ItemID:   drill.ID,
		BookerID: carol.ID,
		Start:    now.Add(24 * time.Hour),
		End:      now.Add(72 * time.Hour),
		Status:   domain.BookingWaiting,
	}
	for _, b := range []*domain.Booking{finished, upcoming} {
		if err := bookings.Create(ctx, b); err != nil {
			log.Fatal("create booking:", err)
		}
	}

	log.Println("Creating comments...")
	review := &domain.Comment{
		Text:      "Beautiful vase, arrived back in one piece",
		ItemID:    vase.ID,
		AuthorID:  bob.ID,
		CreatedAt: now.Add(-24 * time.Hour),
	}
	if err := comments.Create(ctx, review); err != nil {
		log.Fatal("create comment:", err)
	}

	log.Println("Seed complete.")
}
