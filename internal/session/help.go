package session

// Fixed texts of the interactive protocol.
const (
	Welcome      = "Welcome to Booking a Show!"
	Prompt       = ">> "
	InvalidInput = "-- Please try again! Invalid input: "
)

// Help is reprinted after every rejected line so users can self-correct.
const Help = "\n" +
	"List of Commands:\n" +
	"MODE <Type of User>\n" +
	"    Type of User: Admin/Buyer, to switch between these two users\n" +
	"    **Default type of user is Admin\n" +
	"SETUP <Show Number> <Number of Rows> <Number of seats per row> <Cancellation window in minutes>\n" +
	"    To setup the number of seats per show\n" +
	"VIEW <Show Number>\n" +
	"    To display Show Number, Ticket#, Buyer Phone#, Seat Numbers allocated to the buyer\n" +
	"AVAILABILITY <Show Number>\n" +
	"    To list all available seat numbers for a show\n" +
	"BOOK <Show Number> <Phone#> <Comma separated list of seats>\n" +
	"    To book a ticket\n" +
	"CANCEL <Ticket#> <Phone#>\n" +
	"    To cancel a ticket\n" +
	"EXIT\n" +
	"    To exit the program\n" +
	"\n"
