// Package seed loads the starter catalogue: the Kubernetes tutorial
// track and the initial job postings.
package seed

import (
	"gorm.io/gorm"

	"kubeafrika/backend/models"
)

// Tutorials creates the tutorial track unless tutorials already exist.
func Tutorials(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Tutorial{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tutorials := []models.Tutorial{
		{
			Slug:         "introduction-to-kubernetes",
			Title:        "Introduction to Kubernetes",
			Description:  "What Kubernetes is, why it matters, and how African companies use it in production.",
			Difficulty:   models.DifficultyBeginner,
			DisplayOrder: 1,
			Lessons: []models.Lesson{
				{Title: "What is Kubernetes?", Type: models.LessonTypeText, SequenceOrder: 1, Duration: 10,
					Content: "Kubernetes is an open-source container orchestration platform that automates deployment, scaling and management of containerized applications."},
				{Title: "Pods, Nodes and Clusters", Type: models.LessonTypeText, SequenceOrder: 2, Duration: 15,
					Content: "A pod is the smallest deployable unit. Nodes run pods; a cluster is the set of nodes managed by the control plane."},
				{Title: "Your First kubectl Commands", Type: models.LessonTypeTerminal, SequenceOrder: 3, Duration: 15,
					Content: "kubectl get nodes\nkubectl get pods --all-namespaces\nkubectl describe node <name>"},
				{Title: "Check Your Understanding", Type: models.LessonTypeQuiz, SequenceOrder: 4, Duration: 5,
					Content: "Which component schedules pods onto nodes?"},
			},
		},
		{
			Slug:         "deploying-first-pod",
			Title:        "Deploying Your First Pod",
			Description:  "Write a pod manifest and run it on a cluster.",
			Difficulty:   models.DifficultyBeginner,
			DisplayOrder: 2,
			Lessons: []models.Lesson{
				{Title: "Anatomy of a Pod Manifest", Type: models.LessonTypeCode, SequenceOrder: 1, Duration: 15,
					Content: "apiVersion: v1\nkind: Pod\nmetadata:\n  name: hello\nspec:\n  containers:\n  - name: hello\n    image: nginx:1.25"},
				{Title: "Applying and Inspecting", Type: models.LessonTypeTerminal, SequenceOrder: 2, Duration: 10,
					Content: "kubectl apply -f pod.yaml\nkubectl get pods\nkubectl logs hello"},
			},
		},
		{
			Slug:         "services-and-networking",
			Title:        "Services and Networking",
			Description:  "Expose workloads inside and outside the cluster.",
			Difficulty:   models.DifficultyIntermediate,
			DisplayOrder: 3,
			Lessons: []models.Lesson{
				{Title: "ClusterIP, NodePort, LoadBalancer", Type: models.LessonTypeText, SequenceOrder: 1, Duration: 15,
					Content: "Service types decide how traffic reaches your pods."},
				{Title: "Writing a Service Manifest", Type: models.LessonTypeCode, SequenceOrder: 2, Duration: 15,
					Content: "apiVersion: v1\nkind: Service\nmetadata:\n  name: web\nspec:\n  selector:\n    app: web\n  ports:\n  - port: 80"},
			},
		},
		{
			Slug:         "configmaps-and-secrets",
			Title:        "ConfigMaps and Secrets",
			Description:  "Separate configuration from images.",
			Difficulty:   models.DifficultyIntermediate,
			DisplayOrder: 4,
		},
		{
			Slug:         "mobile-money-api-deployment",
			Title:        "Mobile Money API Deployment",
			Description:  "Deploy a payment API the way Lagos fintechs run theirs: rolling updates, probes and resource limits.",
			Difficulty:   models.DifficultyAdvanced,
			DisplayOrder: 5,
		},
	}

	return db.Create(&tutorials).Error
}

// Jobs returns the starter job postings used to seed the job board.
func Jobs() []models.Job {
	return []models.Job{
		{
			ID:          "1",
			Title:       "Senior Kubernetes Engineer",
			Company:     "Flutterwave",
			Location:    "Lagos, Nigeria",
			Type:        models.JobTypeFullTime,
			Salary:      "$80,000 - $120,000",
			Description: "Join Flutterwave's platform team to build and scale our Kubernetes infrastructure supporting millions of transactions across Africa.",
			Requirements: []string{
				"5+ years experience with Kubernetes in production environments",
				"Strong knowledge of container orchestration and microservices",
				"Experience with AWS, GCP, or Azure cloud platforms",
				"Proficiency in Infrastructure as Code (Terraform, CloudFormation)",
			},
			Benefits: []string{
				"Competitive salary and equity package",
				"Comprehensive health insurance",
				"$2,000 annual learning and development budget",
				"Flexible working hours and remote work options",
			},
			Skills:           []string{"Kubernetes", "Docker", "AWS", "Terraform", "Prometheus", "Grafana", "Helm"},
			Responsibilities: []string{"Design and implement Kubernetes clusters for production workloads", "Automate deployment and scaling processes", "Monitor cluster health and performance metrics"},
			Qualifications:   []string{"Bachelor's degree in Computer Science or related field", "Kubernetes certification (CKA, CKAD, or CKS) preferred"},
			ApplicationProcess: []string{
				"Submit your application with resume and cover letter",
				"Technical interview with engineering team",
				"Final interview with engineering leadership",
			},
			PostedAt:       "2 days ago",
			Experience:     models.ExperienceSenior,
			Category:       models.CategoryKubernetes,
			Featured:       true,
			AfricanCompany: true,
			Remote:         true,
			CompanyInfo: &models.CompanyInfo{
				Description: "Flutterwave is Africa's leading payments technology company.",
				Website:     "https://flutterwave.com",
				Size:        "500-1000 employees",
				Founded:     "2016",
				TechStack:   []string{"Kubernetes", "AWS", "Node.js", "React", "PostgreSQL", "Redis", "Docker"},
				Culture:     []string{"Innovation", "Collaboration", "Growth", "Impact"},
			},
		},
		{
			ID:          "2",
			Title:       "DevOps Engineer - Kubernetes Specialist",
			Company:     "Paystack",
			Location:    "Lagos, Nigeria",
			Type:        models.JobTypeFullTime,
			Salary:      "$60,000 - $90,000",
			Description: "Help Paystack scale their payment infrastructure using Kubernetes and modern DevOps practices.",
			Requirements: []string{
				"3+ years DevOps experience",
				"Kubernetes certification preferred",
				"Experience with Terraform",
				"Strong scripting skills (Python/Bash)",
			},
			Benefits:           []string{"Stock options", "Comprehensive health coverage", "Professional development"},
			Skills:             []string{"Kubernetes", "Docker", "Terraform", "AWS", "Prometheus", "Grafana", "Python", "Bash"},
			Responsibilities:   []string{"Manage Kubernetes clusters", "Automate deployments", "Monitor system performance"},
			Qualifications:     []string{"Bachelor's degree", "DevOps certification", "Cloud experience"},
			ApplicationProcess: []string{"Apply online", "Technical interview", "Final interview"},
			PostedAt:           "1 week ago",
			Experience:         models.ExperienceMid,
			Category:           models.CategoryDevOps,
			Featured:           true,
			AfricanCompany:     true,
			Remote:             false,
		},
		{
			ID:          "3",
			Title:       "Cloud Infrastructure Engineer",
			Company:     "Jumia",
			Location:    "Cairo, Egypt",
			Type:        models.JobTypeFullTime,
			Salary:      "$50,000 - $80,000",
			Description: "Design and implement cloud infrastructure solutions for Jumia's e-commerce platform across Africa.",
			Requirements: []string{
				"4+ years cloud experience",
				"Kubernetes and Docker expertise",
				"AWS/Azure certifications",
				"Infrastructure as Code (Terraform)",
			},
			Benefits:           []string{"Performance bonuses", "Health and dental insurance", "Training programs"},
			Skills:             []string{"AWS", "Azure", "Kubernetes", "Terraform", "Docker", "Python"},
			Responsibilities:   []string{"Design cloud architecture", "Implement infrastructure", "Monitor performance"},
			Qualifications:     []string{"Cloud certifications", "Large-scale experience", "Infrastructure knowledge"},
			ApplicationProcess: []string{"Online application", "Technical assessment", "Interview process"},
			PostedAt:           "3 days ago",
			Experience:         models.ExperienceMid,
			Category:           models.CategoryCloud,
			Featured:           false,
			AfricanCompany:     true,
			Remote:             true,
		},
	}
}

// JobsInto seeds a database-backed job store unless postings already exist.
func JobsInto(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	jobs := Jobs()
	return db.Create(&jobs).Error
}
