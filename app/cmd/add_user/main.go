package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Tonii11/aurelius-claim-flow/app/config"
	"github.com/Tonii11/aurelius-claim-flow/app/database"
	"github.com/Tonii11/aurelius-claim-flow/app/models"
)

func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "user password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "lecturer", "role: lecturer, coordinator or academic_manager")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		fmt.Println("Usage: add_user -email ... -password ... -first ... -last ... [-role lecturer]")
		os.Exit(1)
	}

	parsed := models.ParseRole(*role)
	if parsed == models.RoleUnknown {
		fmt.Printf("Unknown role %q\n", *role)
		os.Exit(1)
	}

	config.InitConfig()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(context.Background(), db, user, parsed); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) as %s\n", user.FirstName, user.LastName, user.Email, parsed)
}
