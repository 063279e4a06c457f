package log

import (
	"os"

	"github.com/jobsift/jobsift/utils/dotenv"
	"github.com/jobsift/jobsift/utils/flag"
	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()

	// Send log to stderr. Production runs emit JSON so log aggregators can
	// parse the fields, development runs keep the plain formatter for
	// readability.
	logger.SetOutput(os.Stderr)
	if os.Getenv("JOBSIFT_ENV") == dotenv.ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": os.Getenv("JOBSIFT_ENV") != dotenv.ProdEnv},
	)
}
