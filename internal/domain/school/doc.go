// Package school holds the supporting entities the billing engine charges
// against: academic years, classes, students and enrollments. CRUD here is
// deliberately thin; the interesting rules live in the fees package.
package school
