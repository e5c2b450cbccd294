package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs. The catalog warm and feed
// refresh jobs register themselves through cron.Register from init() in
// cron/jobs (importing them here would cycle back into config).
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
