package services

// İş mantığı servisleri burada olacak

// Services defined in this package:
// - StudentService: Handles listing, filtering and adding student records
