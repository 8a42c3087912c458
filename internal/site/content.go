package site

import "github.com/wolfman30/smilebright-dental/internal/media"

// Clinic contact details rendered in the layout and on the home page.
type Clinic struct {
	Name         string
	Phone        string
	PhoneDisplay string
	Email        string
	AddressLines []string
	HoursLines   []string
}

var defaultClinic = Clinic{
	Name:         "SmileBright Dental",
	Phone:        "+917901934386",
	PhoneDisplay: "+91 98765 43210",
	Email:        "info@smilebrightdental.in",
	AddressLines: []string{"123 Dental Street", "Model Town, Ludhiana, Punjab"},
	HoursLines:   []string{"Mon–Sat: 9 AM – 8 PM", "Sun: 10 AM – 2 PM"},
}

type stat struct {
	Value string
	Label string
}

type pillar struct {
	Icon        string
	Title       string
	Description string
}

// Doctor is a team card on the home page.
type Doctor struct {
	Name       string
	Role       string
	Experience string
	Specialty  string
	Photo      media.Image
}

// Testimonial is a patient review card.
type Testimonial struct {
	Name   string
	Date   string
	Rating int
	Text   string
	Photo  media.Image
}

var stats = []stat{
	{Value: "1000+", Label: "Happy Patients"},
	{Value: "15+", Label: "Years Experience"},
	{Value: "4.9★", Label: "Google Rating"},
	{Value: "99%", Label: "Success Rate"},
}

var trustChips = []string{"Pain-Free Treatments", "Same-Day Emergency", "EMI Available"}

var pillars = []pillar{
	{Icon: "sentiment_satisfied", Title: "Patient-First Care", Description: "Every treatment plan is tailored to your unique needs, budget, and comfort."},
	{Icon: "biotech", Title: "Modern Technology", Description: "Digital X-rays, painless injections, and laser dentistry for better outcomes."},
	{Icon: "shield", Title: "Safety & Hygiene", Description: "Hospital-grade sterilisation and strict infection-control protocols every time."},
}

const defaultPhoto = "https://lh3.googleusercontent.com/a/default"

func avatarPhoto(src, name string, size int) media.Image {
	return media.Image{Src: src, Alt: name, FallbackName: name, Width: size, Height: size}
}

var doctors = []Doctor{
	{
		Name:       "Dr. Siddharth Sharma",
		Role:       "Lead Dentist & Founder",
		Experience: "15+ Years",
		Specialty:  "Cosmetic & Restorative",
		Photo:      avatarPhoto("https://lh3.googleusercontent.com/a/ACg8ocJsHPGSMcLwp_iuyh0eezH9jkPSGEGFwm9wU8YU_FZG7LDU=s96-c", "Dr. Siddharth Sharma", 64),
	},
	{
		Name:       "Dr. Priya Mehta",
		Role:       "Orthodontist",
		Experience: "10+ Years",
		Specialty:  "Braces & Aligners",
		Photo:      avatarPhoto(defaultPhoto, "Dr. Priya Mehta", 64),
	},
}

var testimonials = []Testimonial{
	{
		Name:   "Rahul Singh",
		Date:   "2 weeks ago",
		Rating: 5,
		Text:   "Absolutely amazing experience! Dr. Sharma is brilliant and the clinic is spotless. My smile has never looked better after the veneer treatment.",
		Photo:  avatarPhoto(defaultPhoto, "Rahul Singh", 40),
	},
	{
		Name:   "Priya Kapoor",
		Date:   "1 month ago",
		Rating: 5,
		Text:   "I had severe dental anxiety but the team was incredibly patient with me. Super painless root canal, highly recommend!",
		Photo:  avatarPhoto(defaultPhoto, "Priya Kapoor", 40),
	},
	{
		Name:   "Vikram Patel",
		Date:   "3 weeks ago",
		Rating: 5,
		Text:   "Best dental experience of my life. Same-day appointments, friendly staff, and top-tier results. Worth every rupee.",
		Photo:  avatarPhoto(defaultPhoto, "Vikram Patel", 40),
	},
}

type navItem struct {
	Href  string
	Icon  string
	Label string
}

var bottomNav = []navItem{
	{Href: "/", Icon: "home", Label: "Home"},
	{Href: "/services", Icon: "medical_services", Label: "Services"},
	{Href: "/#contact", Icon: "location_on", Label: "Clinics"},
	{Href: "/#testimonials", Icon: "reviews", Label: "Reviews"},
}

var menuNav = []navItem{
	{Href: "/", Icon: "home", Label: "Home"},
	{Href: "/services", Icon: "medical_services", Label: "Services"},
	{Href: "/#doctors", Icon: "group", Label: "Our Team"},
	{Href: "/#testimonials", Icon: "reviews", Label: "Reviews"},
	{Href: "/#contact", Icon: "location_on", Label: "Contact"},
}
